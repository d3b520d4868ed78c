package http

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	Category    string `json:"category"`
}

type updateReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Budget      *string `json:"budget,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type addPartReq struct {
	PartID string `json:"part_id"`
}
