package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/auth"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/book"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/loan"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/message"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/session"
)

type C struct {
	Auth    *auth.Controller
	Book    *book.Controller
	Loan    *loan.Controller
	Message *message.Controller

	SessionSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/contact", c.Message.Submit)
	e.POST("/users/register", c.Auth.Register)
	e.POST("/users/login", c.Auth.Login)
	e.POST("/admin/login", c.Auth.AdminLogin)

	// Login entry points the guards redirect to. Views are rendered by the
	// front end; the server just marks the spot.
	loginEntry := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "login required"})
	}
	e.GET(session.UserLoginPath, loginEntry)
	e.GET(session.AdminLoginPath, loginEntry)

	// User area
	user := e.Group("",
		session.Guard(c.SessionSecret, session.UserLoginPath),
		session.RequireRole(session.RoleUser, session.UserLoginPath),
	)
	user.GET("/books", c.Book.List)
	user.GET("/loans", c.Loan.Mine)
	user.POST("/loans", c.Loan.Borrow)
	user.POST("/loans/return", c.Loan.Return)
	user.GET("/messages", c.Message.Mine)
	user.POST("/logout", c.Auth.Logout)

	// Admin area
	admin := e.Group("/admin",
		session.Guard(c.SessionSecret, session.AdminLoginPath),
		session.RequireRole(session.RoleAdmin, session.AdminLoginPath),
	)
	admin.POST("/books", c.Book.Create)
	admin.DELETE("/books/:title", c.Book.Remove)
	admin.GET("/loans", c.Loan.All)
	admin.GET("/messages", c.Message.All)
	admin.POST("/messages/:id/reply", c.Message.Reply)
	admin.POST("/logout", c.Auth.Logout)
}
