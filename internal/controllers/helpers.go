package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

// respondError maps a service error to its HTTP response. Validation
// errors render their field map; everything else renders {"error": msg}
// with the status determined by the error kind.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperr.ValidationFailed && len(appErr.Fields) > 0 {
			ctx.JSON(appErr.Status(), appErr.Fields)
			return
		}
		ctx.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}

	log.WithError(err).Error("Unhandled service error")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// validationFields converts gin binding errors into a field-error map
// like {"email": ["Enter a valid email address"]}. jsonNames maps struct
// field names to their JSON names for fields where a simple lowercase
// of the Go name is not the wire name.
func validationFields(err error, jsonNames map[string]string) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"non_field_errors": {err.Error()}}
	}

	fields := make(map[string][]string)
	for _, fe := range verrs {
		name, ok := jsonNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "This value is invalid"
	}
}

// capitalize normalizes free-text filter values: first rune upper, the
// rest lower, matching how categories and product types are stored.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// pageEnvelope is the limit/offset pagination response wrapper.
type pageEnvelope struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// respondPaginated serves list endpoints with limit/offset pagination.
// Without a limit parameter the full result set is returned as a plain
// array; with one, a count/next/previous envelope wraps the page.
func respondPaginated(ctx *gin.Context, products []models.FoodProduct) {
	if products == nil {
		products = []models.FoodProduct{}
	}

	limitParam := ctx.Query("limit")
	if limitParam == "" {
		ctx.JSON(http.StatusOK, products)
		return
	}

	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	offset := 0
	if offsetParam := ctx.Query("offset"); offsetParam != "" {
		offset, err = strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset parameter"})
			return
		}
	}

	count := len(products)
	start := offset
	if start > count {
		start = count
	}
	end := start + limit
	if end > count {
		end = count
	}

	envelope := pageEnvelope{
		Count:   count,
		Results: products[start:end],
	}
	if offset+limit < count {
		envelope.Next = pageURL(ctx, limit, offset+limit)
	}
	if offset > 0 {
		prev := offset - limit
		if prev < 0 {
			prev = 0
		}
		envelope.Previous = pageURL(ctx, limit, prev)
	}
	ctx.JSON(http.StatusOK, envelope)
}

func pageURL(ctx *gin.Context, limit, offset int) *string {
	u := *ctx.Request.URL
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// pathID parses the numeric id path parameter.
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return 0, false
	}
	return uint(id), true
}
