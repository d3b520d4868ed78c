package catalog

import "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"

// seedParts returns the built-in mock catalog. In a real deployment this
// would come from a vendor feed; prices keep their currency-formatted form
// and are normalized at the point of arithmetic.
func seedParts() []domain.Part {
	return []domain.Part{
		{
			ID:          "cpu1",
			Name:        "Intel Core i9-14900K",
			Category:    domain.CategoryCPU,
			Price:       "$599.99",
			Rating:      4.8,
			Description: "Latest generation Intel Core i9 processor with 24 cores and 32 threads",
		},
		{
			ID:          "cpu2",
			Name:        "AMD Ryzen 9 9950X",
			Category:    domain.CategoryCPU,
			Price:       "$549.99",
			Rating:      4.9,
			Description: "High-performance AMD processor with 16 cores and 32 threads",
		},
		{
			ID:          "gpu1",
			Name:        "NVIDIA RTX 4090",
			Category:    domain.CategoryGPU,
			Price:       "$1,599.99",
			Rating:      4.9,
			Description: "Flagship graphics card with 24GB GDDR6X memory",
		},
		{
			ID:          "gpu2",
			Name:        "AMD Radeon RX 7900 XTX",
			Category:    domain.CategoryGPU,
			Price:       "$999.99",
			Rating:      4.7,
			Description: "High-end AMD graphics card with 24GB GDDR6 memory",
		},
		{
			ID:          "ram1",
			Name:        "Corsair Vengeance 32GB DDR5",
			Category:    domain.CategoryRAM,
			Price:       "$149.99",
			Rating:      4.8,
			Description: "High-speed DDR5 RAM kit (2x16GB)",
		},
		{
			ID:          "ram2",
			Name:        "G.Skill Trident Z5 64GB DDR5",
			Category:    domain.CategoryRAM,
			Price:       "$299.99",
			Rating:      4.9,
			Description: "Premium RGB DDR5 RAM kit (2x32GB)",
		},
		{
			ID:          "storage1",
			Name:        "Samsung 990 PRO 2TB NVMe SSD",
			Category:    domain.CategoryStorage,
			Price:       "$179.99",
			Rating:      4.9,
			Description: "Ultra-fast PCIe 4.0 NVMe SSD with up to 7,450 MB/s read speeds",
		},
		{
			ID:          "storage2",
			Name:        "WD Black 4TB HDD",
			Category:    domain.CategoryStorage,
			Price:       "$119.99",
			Rating:      4.6,
			Description: "7200 RPM performance hard drive for gaming and storage",
		},
		{
			ID:          "case1",
			Name:        "Lian Li O11 Dynamic EVO",
			Category:    domain.CategoryCase,
			Price:       "$169.99",
			Rating:      4.8,
			Description: "Premium mid-tower case with excellent airflow and cable management",
		},
		{
			ID:          "case2",
			Name:        "Corsair 5000D Airflow",
			Category:    domain.CategoryCase,
			Price:       "$149.99",
			Rating:      4.7,
			Description: "High-airflow mid-tower ATX case with tempered glass side panel",
		},
		{
			ID:          "psu1",
			Name:        "Corsair RM1000x",
			Category:    domain.CategoryPSU,
			Price:       "$189.99",
			Rating:      4.8,
			Description: "1000W fully modular power supply with 80+ Gold efficiency",
		},
		{
			ID:          "psu2",
			Name:        "EVGA SuperNOVA 850 G6",
			Category:    domain.CategoryPSU,
			Price:       "$129.99",
			Rating:      4.7,
			Description: "850W fully modular power supply with 80+ Gold certification",
		},
		{
			ID:          "cooling1",
			Name:        "NZXT Kraken X73",
			Category:    domain.CategoryCooling,
			Price:       "$179.99",
			Rating:      4.7,
			Description: "360mm AIO liquid CPU cooler with RGB lighting",
		},
		{
			ID:          "cooling2",
			Name:        "Noctua NH-D15",
			Category:    domain.CategoryCooling,
			Price:       "$99.99",
			Rating:      4.9,
			Description: "High-performance dual-tower CPU air cooler",
		},
		{
			ID:          "mb1",
			Name:        "ASUS ROG Maximus Z790 Hero",
			Category:    domain.CategoryMotherboard,
			Price:       "$629.99",
			Rating:      4.8,
			Description: "High-end ATX motherboard for Intel 12th/13th/14th gen CPUs",
		},
		{
			ID:          "mb2",
			Name:        "MSI MPG X870 CARBON WIFI",
			Category:    domain.CategoryMotherboard,
			Price:       "$499.99",
			Rating:      4.7,
			Description: "Premium AMD AM5 motherboard with PCIe 5.0 and DDR5 support",
		},
	}
}
