package book

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	booksvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /admin/books  (admin)
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"titulo": "required", "autor": "required"},
		})
	}
	if err := h.Svc.Add(c.Request().Context(), req.Title, req.Author); err != nil {
		if errors.Is(err, booksvc.ErrInvalidPayload) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"titulo": req.Title, "autor": req.Author})
}

// DELETE /admin/books/:title  (admin) — removes every copy with that exact
// title.
func (h *Controller) Remove(c echo.Context) error {
	title := c.Param("title")
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid title"})
	}
	removed, err := h.Svc.Remove(c.Request().Context(), title)
	if err != nil {
		h.Log.Error("book remove error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": removed})
}

// GET /books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
