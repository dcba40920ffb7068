package devserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wswfws/2673517-six-cities-6/internal/sixcities"
)

const tokenHeader = "X-Token"

// envelope mirrors the hosted backend's error body for 400/401/404.
type envelope struct {
	ErrorType string   `json:"errorType"`
	Message   string   `json:"message"`
	Details   []detail `json:"details"`
}

type detail struct {
	Property string   `json:"property"`
	Value    string   `json:"value"`
	Messages []string `json:"messages"`
}

// NewRouter builds the gin engine serving the six-cities API surface
// against the given storage.
func NewRouter(storage *Storage, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/offers", func(c *gin.Context) {
		c.JSON(http.StatusOK, storage.Offers(sessionToken(c)))
	})

	router.GET("/offers/:id", func(c *gin.Context) {
		offer, ok := storage.Offer(c.Param("id"), sessionToken(c))
		if !ok {
			abortNotFound(c, c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, offer)
	})

	router.GET("/offers/:id/nearby", func(c *gin.Context) {
		nearby, ok := storage.Nearby(c.Param("id"), sessionToken(c))
		if !ok {
			abortNotFound(c, c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, orEmptyPlaces(nearby))
	})

	router.GET("/comments/:id", func(c *gin.Context) {
		comments, ok := storage.Comments(c.Param("id"))
		if !ok {
			abortNotFound(c, c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, orEmptyReviews(comments))
	})

	router.POST("/comments/:id", func(c *gin.Context) {
		token, ok := requireSession(c, storage)
		if !ok {
			return
		}
		var payload sixcities.CommentPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortBadRequest(c, "Validation error", nil)
			return
		}
		if details := validateComment(payload); len(details) > 0 {
			abortBadRequest(c, "Validation error: /six-cities/comments", details)
			return
		}
		review, ok := storage.AddComment(c.Param("id"), token, payload)
		if !ok {
			abortNotFound(c, c.Param("id"))
			return
		}
		c.JSON(http.StatusCreated, review)
	})

	router.POST("/favorite/:id/:status", func(c *gin.Context) {
		token, ok := requireSession(c, storage)
		if !ok {
			return
		}
		status := c.Param("status")
		if status != "0" && status != "1" {
			abortBadRequest(c, "Validation error: /six-cities/favorite", []detail{{
				Property: "status",
				Value:    status,
				Messages: []string{"status must be 0 or 1"},
			}})
			return
		}
		place, ok := storage.SetFavorite(c.Param("id"), token, status == "1")
		if !ok {
			abortNotFound(c, c.Param("id"))
			return
		}
		c.JSON(http.StatusOK, place)
	})

	router.POST("/login", func(c *gin.Context) {
		var creds sixcities.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			abortBadRequest(c, "Validation error: /six-cities/login", nil)
			return
		}
		if details := validateCredentials(creds); len(details) > 0 {
			abortBadRequest(c, "Validation error: /six-cities/login", details)
			return
		}
		c.JSON(http.StatusCreated, storage.Login(strings.TrimSpace(creds.Email)))
	})

	router.GET("/login", func(c *gin.Context) {
		profile, ok := storage.Session(sessionToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				ErrorType: "COMMON_ERROR",
				Message:   "You are not logged in or you do not have permission to this page.",
			})
			return
		}
		c.JSON(http.StatusOK, profile)
	})

	return router
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger != nil {
			logger.Info("request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", c.Writer.Status(),
				"duration", time.Since(start))
		}
	}
}

func sessionToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(tokenHeader))
}

func requireSession(c *gin.Context, storage *Storage) (string, bool) {
	token := sessionToken(c)
	if _, ok := storage.Session(token); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
			ErrorType: "COMMON_ERROR",
			Message:   "You are not logged in or you do not have permission to this page.",
		})
		return "", false
	}
	return token, true
}

func abortNotFound(c *gin.Context, id string) {
	c.AbortWithStatusJSON(http.StatusNotFound, envelope{
		ErrorType: "COMMON_ERROR",
		Message:   fmt.Sprintf("Offer with id %s not found.", id),
	})
}

func abortBadRequest(c *gin.Context, message string, details []detail) {
	if details == nil {
		details = []detail{}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, envelope{
		ErrorType: "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
	})
}

func validateComment(payload sixcities.CommentPayload) []detail {
	var details []detail
	if payload.Rating < 1 || payload.Rating > 5 {
		details = append(details, detail{
			Property: "rating",
			Value:    fmt.Sprintf("%d", payload.Rating),
			Messages: []string{"rating must be between 1 and 5"},
		})
	}
	if n := len([]rune(payload.Comment)); n < 50 || n > 300 {
		details = append(details, detail{
			Property: "comment",
			Value:    payload.Comment,
			Messages: []string{"comment length must be between 50 and 300 characters"},
		})
	}
	return details
}

func validateCredentials(creds sixcities.Credentials) []detail {
	var details []detail
	email := strings.TrimSpace(creds.Email)
	if email == "" || !strings.Contains(email, "@") {
		details = append(details, detail{
			Property: "email",
			Value:    creds.Email,
			Messages: []string{"email must be a valid address"},
		})
	}
	hasLetter := strings.ContainsFunc(creds.Password, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	hasDigit := strings.ContainsFunc(creds.Password, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if !hasLetter || !hasDigit {
		details = append(details, detail{
			Property: "password",
			Messages: []string{"password must contain at least one letter and one digit"},
		})
	}
	return details
}

func orEmptyPlaces(places []sixcities.Place) []sixcities.Place {
	if places == nil {
		return []sixcities.Place{}
	}
	return places
}

func orEmptyReviews(reviews []sixcities.Review) []sixcities.Review {
	if reviews == nil {
		return []sixcities.Review{}
	}
	return reviews
}
