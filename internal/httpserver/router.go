package httpserver

import (
	"context"
	"log"
	"net/http"

	"digitalstore/internal/payment"
	"digitalstore/internal/service/catalog"
	"digitalstore/internal/service/checkout"
	"digitalstore/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Mailer subscribes an email to the mailing list. source may be empty.
type Mailer interface {
	Subscribe(ctx context.Context, email, source string) error
}

// PaymentGateway creates gateway orders and verifies payment signatures.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// Deps carries the services and adapters the routes dispatch to.
type Deps struct {
	Catalog  *catalog.Service
	Checkout *checkout.Service
	Mailer   Mailer
	Payments PaymentGateway
}

// buildRouter wires routes for the API. CORS is wide open: the storefront
// frontend is served from arbitrary origins.
func buildRouter(logger *log.Logger, st *store.Client, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.GET("/", rootHandler)
	router.GET("/api/hello", helloHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(st))
	router.GET("/test", testHandler(deps.Catalog))

	router.POST("/products", createProductHandler(deps.Catalog))
	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:slug", getProductHandler(deps.Catalog))
	router.POST("/checkout", checkoutHandler(deps.Checkout))

	router.POST("/subscribe", subscribeHandler(deps.Mailer))
	router.POST("/payments/upi/create-order", createPaymentOrderHandler(deps.Payments))
	router.POST("/payments/razorpay/verify-signature", verifySignatureHandler(deps.Payments))

	return router
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the Digital Store API!"})
}

func helloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// testHandler probes the product collection so a deployment can check store
// wiring end to end.
func testHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context(), listProbe)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"ok": true, "db_connected": false, "sample_count": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "db_connected": true, "sample_count": len(items)})
	}
}
