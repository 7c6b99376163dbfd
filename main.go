// Package main biblioteca API.
//
// @title           Biblioteca API
// @version         1.0
// @description     Library web service: catalog, loans, contact messages.
// @BasePath        /
// @schemes         http
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer"
	authctrl "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/auth"
	bookctrl "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/book"
	loanctrl "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/loan"
	messagectrl "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/controller/message"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/validation"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/config"
	bookrepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/book"
	loanrepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/loan"
	messagerepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/message"
	userrepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/user"
	authsvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/auth"
	booksvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/book"
	loansvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/loan"
	messagesvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/message"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Error("open data dir failed", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(st)
	br := bookrepo.New(st)
	lr := loanrepo.New(st)
	mr := messagerepo.New(st)

	// services
	as := authsvc.New(ur)
	bs := booksvc.New(br)
	ls := loansvc.New(lr)
	ms := messagesvc.New(mr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{
		Svc: as, V: v, Log: log,
		Secret:         cfg.SessionSecret,
		AdminLoginName: cfg.AdminLogin,
		AdminPassword:  cfg.AdminPassword,
	}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}
	messageC := &messagectrl.Controller{Svc: ms, V: v, Log: log, Secret: cfg.SessionSecret}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Book:    bookC,
		Loan:    loanC,
		Message: messageC,

		SessionSecret: cfg.SessionSecret,
	})

	slog.Info("starting server", "port", cfg.Port, "data_dir", cfg.DataDir, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
