package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/entity"
)

// PageHandler renders the three storefront pages. The publishable key is
// injected into the checkout view for Stripe.js; it is not a secret.
type PageHandler struct {
	publishableKey string
}

func NewPageHandler(publishableKey string) *PageHandler {
	return &PageHandler{publishableKey: publishableKey}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Checkout always answers 200: an unknown or missing item id is rendered
// in-page, not as an HTTP error.
func (h *PageHandler) Checkout(c *gin.Context) {
	data := gin.H{"stripePk": h.publishableKey}

	item, err := domain.LookupItem(c.Query("item"))
	if err != nil {
		data["error"] = err.Error()
	} else {
		data["title"] = item.Title
		data["amount"] = item.AmountCents
	}

	c.HTML(http.StatusOK, "checkout.html", data)
}

func (h *PageHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{})
}
