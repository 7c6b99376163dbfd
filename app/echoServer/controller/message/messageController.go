package message

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/app/echoServer/session"
	messagesvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/message"
)

type Controller struct {
	Svc messagesvc.Service
	V   *validator.Validate
	Log *slog.Logger

	// Secret lets Submit peek at an optional session cookie so messages
	// from signed-in users are attributed to their login.
	Secret string
}

// POST /contact  (public)
func (h *Controller) Submit(c echo.Context) error {
	var req SubmitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	login := ""
	if l, _, role := session.Peek(c, h.Secret); role == session.RoleUser {
		login = l
	}

	m, err := h.Svc.Submit(c.Request().Context(), req.Name, req.Email, req.Body, login)
	if err != nil {
		h.Log.Error("message submit error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, m)
}

// POST /admin/messages/:id/reply  (admin)
func (h *Controller) Reply(c echo.Context) error {
	id := c.Param("id")

	var req ReplyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"resposta": "required"}})
	}

	if err := h.Svc.Reply(c.Request().Context(), id, req.Reply); err != nil {
		if errors.Is(err, messagesvc.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "message not found"})
		}
		h.Log.Error("message reply error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "replied"})
}

// GET /messages  (user)
func (h *Controller) Mine(c echo.Context) error {
	login, _ := c.Get("login").(string)
	rows, err := h.Svc.ForLogin(c.Request().Context(), login)
	if err != nil {
		h.Log.Error("message list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /admin/messages  (admin)
func (h *Controller) All(c echo.Context) error {
	rows, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("message list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
