package loan

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	loansvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/loan"
)

type Controller struct {
	Svc loansvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /loans  (user) — borrow by title. No availability check exists; the
// loan is recorded even when the catalog has no such title.
func (h *Controller) Borrow(c echo.Context) error {
	var req BorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"titulo": "required"}})
	}

	login, _ := c.Get("login").(string)
	l, err := h.Svc.Borrow(c.Request().Context(), login, req.Title)
	if err != nil {
		h.Log.Error("borrow error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, l)
}

// POST /loans/return  (user) — marks every outstanding loan of that title
// returned.
func (h *Controller) Return(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"titulo": "required"}})
	}

	login, _ := c.Get("login").(string)
	n, err := h.Svc.Return(c.Request().Context(), login, req.Title)
	if err != nil {
		h.Log.Error("return error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"returned": n})
}

// GET /loans  (user)
func (h *Controller) Mine(c echo.Context) error {
	login, _ := c.Get("login").(string)
	rows, err := h.Svc.ForUser(c.Request().Context(), login)
	if err != nil {
		h.Log.Error("loan list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /admin/loans  (admin)
func (h *Controller) All(c echo.Context) error {
	rows, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("loan list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
