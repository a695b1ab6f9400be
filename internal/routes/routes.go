package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/priyanshu-0911/zenith-expense-tracker/internal/config"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/handlers"
	"github.com/priyanshu-0911/zenith-expense-tracker/internal/middleware"
)

// SetupRouter wires every API route. All /api routes except register and
// login sit behind the bearer-token middleware.
func SetupRouter(cfg *config.Config, pool *pgxpool.Pool, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Zenith Expense Tracker Backend is Running!")
	})

	api := r.Group("/api")

	api.POST("/auth/register", handlers.Register(pool, cfg.JWTSecret, logger))
	api.POST("/auth/login", handlers.Login(pool, cfg.JWTSecret, logger))

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))

	protected.GET("/auth", handlers.CurrentUser(pool, logger))
	protected.PUT("/users/change-password", handlers.ChangePassword(pool, logger))

	protected.GET("/receipts", handlers.ListReceipts(pool, logger))
	protected.POST("/receipts", handlers.CreateReceipt(pool, logger))
	protected.PUT("/receipts/:id", handlers.UpdateReceipt(pool, logger))
	protected.DELETE("/receipts/:id", handlers.DeleteReceipt(pool, logger))

	protected.GET("/categories", handlers.ListCategories(pool, logger))
	protected.POST("/categories", handlers.CreateCategory(pool, logger))
	protected.PUT("/categories/:id", handlers.UpdateCategory(pool, logger))
	protected.DELETE("/categories/:id", handlers.DeleteCategory(pool, logger))

	protected.GET("/budgets", handlers.ListBudgets(pool, logger))
	protected.POST("/budgets", handlers.CreateBudget(pool, logger))
	protected.DELETE("/budgets/:id", handlers.DeleteBudget(pool, logger))

	protected.GET("/goals", handlers.ListGoals(pool, logger))
	protected.POST("/goals", handlers.CreateGoal(pool, logger))
	protected.PUT("/goals/:id/add-savings", handlers.AddSavings(pool, logger))

	protected.GET("/funds", handlers.ListFunds(pool, logger))
	protected.POST("/funds", handlers.CreateFund(pool, logger))
	protected.GET("/funds/:id", handlers.GetFund(pool, logger))

	protected.GET("/recurring", handlers.ListRules(pool, logger))
	protected.POST("/recurring", handlers.CreateRule(pool, logger))
	protected.PUT("/recurring/:id", handlers.UpdateRule(pool, logger))
	protected.DELETE("/recurring/:id", handlers.DeleteRule(pool, logger))

	return r
}
