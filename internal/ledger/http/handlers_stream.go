package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
)

// StreamCartEvents streams ledger change notifications to an open browsing
// context using Server-Sent Events (SSE). Every context bound to the same
// user sees the same stream; on a change event the page re-reads the cart
// and recomputes totals. Clients pass their last-seen version via ?since= so
// events they already applied are skipped instead of triggering a reload.
func (h *Handler) StreamCartEvents(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	lastSeen := int64(0)
	if since := c.Query("since"); since != "" {
		v, err := strconv.ParseInt(since, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid since parameter"})
			return
		}
		lastSeen = v
	}

	ctx := c.Request.Context()

	sub, err := h.notifier.Subscribe(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to subscribe"})
		return
	}
	defer sub.Close()

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	// Send the current version so the client can detect changes that landed
	// between its last load and this subscription.
	version, err := h.ledger.Version(ctx, userID)
	if err != nil {
		log.Printf("Failed to read ledger version for user %s, no initial event: %v", userID, err)
	} else {
		initialData, _ := json.Marshal(gin.H{"version": version})
		fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", string(initialData))
		flusher.Flush()
		if version > lastSeen {
			lastSeen = version
		}
	}

	// Keep-alive pings so proxies don't drop the idle stream.
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case event, open := <-sub.Events():
			if !open {
				return
			}
			// Skip events this context has already applied.
			if event.Version <= lastSeen {
				continue
			}
			lastSeen = event.Version

			eventData, _ := json.Marshal(event)
			fmt.Fprintf(c.Writer, "event: change\ndata: %s\n\n", string(eventData))
			flusher.Flush()
		}
	}
}
