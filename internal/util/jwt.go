package util

import (
	"errors"
	"time"

	"institute_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the staff token payload.
type Claims struct {
	UserID uint           `json:"user_id"`
	Role   model.UserRole `json:"role"`
	Email  string         `json:"email"`
	jwt.RegisteredClaims
}

// StudentClaims is the student token payload. The realm field keeps the
// two token kinds from being accepted across middlewares.
type StudentClaims struct {
	StudentID    uint   `json:"student_id"`
	EnrollmentNo string `json:"enrollment_no"`
	Realm        string `json:"realm"`
	jwt.RegisteredClaims
}

const studentRealm = "student"

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func GenerateStudentJWT(student *model.Student, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &StudentClaims{
		StudentID:    student.ID,
		EnrollmentNo: student.EnrollmentNo,
		Realm:        studentRealm,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseStudentJWT(tokenString, secret string) (*StudentClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StudentClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*StudentClaims)
	if !ok || !token.Valid || claims.Realm != studentRealm {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetStudentFromContext(c *gin.Context) *StudentClaims {
	student, exists := c.Get("student")
	if !exists {
		return nil
	}
	claims, ok := student.(*StudentClaims)
	if !ok {
		return nil
	}
	return claims
}
