package helper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/steellight541/cinema-app/config"
	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/utils"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func usersPath() string {
	dir := config.Config("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return filepath.Join(dir, "users.json")
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func LoadUsers() ([]model.User, error) {
	data, err := os.ReadFile(usersPath())
	if os.IsNotExist(err) {
		return []model.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByUsername returns nil, nil when no such user exists.
func GetUserByUsername(username string) (*model.User, error) {
	users, err := LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// SeedUsers writes the default accounts when the users file is missing.
func SeedUsers() {
	path := usersPath()
	if _, err := os.Stat(path); err == nil {
		return
	}
	seeds := []struct {
		username, password, role string
	}{
		{"manager", "password123", constants.ROLE_MANAGER},
		{"user1", "password123", constants.ROLE_USER},
	}
	users := []model.User{}
	for i, s := range seeds {
		hash, err := HashPassword(s.password)
		if err != nil {
			utils.Logger.Errorw("failed to hash seed password", "username", s.username, "error", err)
			continue
		}
		users = append(users, model.User{ID: i + 1, Username: s.username, Password: hash, Role: s.role})
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		utils.Logger.Errorw("failed to encode seed users", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		utils.Logger.Errorw("failed to create data dir", "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		utils.Logger.Errorw("failed to seed users file", "error", err)
		return
	}
	utils.Logger.Infow("seeded default users", "path", path)
}

func GenerateToken(user model.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = user.ID
	claims["username"] = user.Username
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetUserFromToken reads the verified claims stashed by the auth middleware.
func GetUserFromToken(c *fiber.Ctx) model.TokenClaim {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return model.TokenClaim{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}
	claim := model.TokenClaim{}
	if id, ok := claims["id"].(float64); ok {
		claim.UserID = int(id)
	}
	if username, ok := claims["username"].(string); ok {
		claim.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		claim.Role = role
	}
	return claim
}
