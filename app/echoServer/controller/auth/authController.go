package auth

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/session"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	authsvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger

	Secret         string
	AdminLoginName string
	AdminPassword  string
}

// Register a new user account
// @Summary      Register user
// @Description  Register a new account; the login must be unused
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "login already taken"
// @Router       /users/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	u, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrLoginTaken):
			return echo.NewHTTPError(http.StatusConflict, "login already taken")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "registered",
		"user":    u,
	})
}

// Login with a user account
// @Summary      User login
// @Description  Login with login + password; sets the session cookie
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /users/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	u, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidCreds):
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid login or password")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	if err := session.Start(c, ct.Secret, u.Login, u.Name, session.RoleUser); err != nil {
		ct.Log.Error("session start failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login success",
		"user":    u,
	})
}

// AdminLogin checks the configured admin credentials; no account record
// backs the admin session.
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /admin/login [post]
func (ct *Controller) AdminLogin(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	loginOK := subtle.ConstantTimeCompare([]byte(req.Login), []byte(ct.AdminLoginName))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ct.AdminPassword))
	if loginOK&passOK != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin credentials")
	}

	if err := session.Start(c, ct.Secret, "", ct.AdminLoginName, session.RoleAdmin); err != nil {
		ct.Log.Error("session start failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "login success"})
}

// Logout destroys the session and sends the caller home.
func (ct *Controller) Logout(c echo.Context) error {
	session.End(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
