package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/adapter/http/middleware"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/logging"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/usecase"
)

type PaymentHandler struct {
	create *usecase.CreatePaymentIntent
}

func NewPaymentHandler(create *usecase.CreatePaymentIntent) *PaymentHandler {
	return &PaymentHandler{create: create}
}

type createPaymentIntentReq struct {
	Email    string                   `json:"email"`
	Amount   int64                    `json:"amount"`
	Shipping *usecase.ShippingDetails `json:"shipping"`
}

type createPaymentIntentResp struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent handler: validate, delegate to the gateway, map the
// outcome. An unparsable body gets the same 400 as missing fields.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req createPaymentIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrMissingFields.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	out, err := h.create.Execute(ctx, usecase.CreatePaymentIntentInput{
		Email:       req.Email,
		AmountCents: req.Amount,
		Shipping:    req.Shipping,
	})

	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.ObservePaymentIntent("failed")
		logging.From(c).Error("payment intent creation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	middleware.ObservePaymentIntent("created")
	c.JSON(http.StatusOK, createPaymentIntentResp{ClientSecret: out.ClientSecret})
}
