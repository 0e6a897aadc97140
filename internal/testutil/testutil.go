package testutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookradar/internal/catalog"
	"bookradar/internal/platform/crypto"
	"bookradar/internal/user"
)

// TestUser is a fixture account for handler tests.
var TestUser = user.User{
	ID:        "test-user-id-123",
	Username:  "testuser",
	CreatedAt: time.Now(),
}

// TestOverview is a small best-seller snapshot covering the search paths:
// one fiction list, one nonfiction list, one duplicated book.
var TestOverview = catalog.Overview{
	Lists: []catalog.List{
		{
			ListName:        "Hardcover Fiction",
			DisplayName:     "Hardcover Fiction",
			ListNameEncoded: "hardcover-fiction",
			Books: []catalog.Book{
				{Title: "The Silent Sea", Author: "Anna Reyes", PrimaryISBN13: "9780000000001"},
				{Title: "Winter Light", Author: "Tomas Berg", PrimaryISBN13: "9780000000002"},
			},
		},
		{
			ListName:        "Combined Print and E-Book Fiction",
			DisplayName:     "Combined Print & E-Book Fiction",
			ListNameEncoded: "combined-print-and-e-book-fiction",
			Books: []catalog.Book{
				{Title: "The Silent Sea", Author: "Anna Reyes", PrimaryISBN13: "9780000000001"},
				{Title: "Harbor Town", Author: "Mei Lin", PrimaryISBN13: "9780000000003"},
			},
		},
		{
			ListName:        "Hardcover Nonfiction",
			DisplayName:     "Hardcover Nonfiction",
			ListNameEncoded: "hardcover-nonfiction",
			Books: []catalog.Book{
				{Title: "Deep Work Habits", Author: "Carl Mason", PrimaryISBN13: "9780000000004"},
			},
		},
	},
}

// GenerateTestToken signs a JWT for handler tests.
func GenerateTestToken(secret, userID string) string {
	token, _ := crypto.GenerateToken(secret, userID, time.Hour)
	return token
}

// GenerateExpiredToken signs an already-expired JWT.
func GenerateExpiredToken(secret, userID string) string {
	c := crypto.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, _ := t.SignedString([]byte(secret))
	return signed
}
