package helper

import (
	"cardapio_digital/constants"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	if tokenClaim.BusinessId != nil {
		claims["businessId"] = *tokenClaim.BusinessId
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken recarrega a conta do token e devolve o claim
// junto com os papéis (admin da plataforma, dono/equipe do estabelecimento)
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	tokenClaim := token.Claims.(jwt.MapClaims)
	accountIdFloat, ok := tokenClaim["accountId"].(float64)
	if !ok {
		return model.TokenClaim{}, false, false
	}
	accountId := uint(accountIdFloat)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		return model.TokenClaim{}, false, false
	}

	accountInfo := model.TokenClaim{
		AccountId:  account.ID,
		Username:   account.Username,
		BusinessId: account.BusinessId,
	}

	isAdmin := account.Role == constants.ROLE_ADMIN
	isBusiness := account.Role == constants.ROLE_OWNER || account.Role == constants.ROLE_STAFF

	return accountInfo, isAdmin, isBusiness
}

// RequireBusinessId resolve o estabelecimento da conta logada;
// admin da plataforma não tem estabelecimento próprio
func RequireBusinessId(c *fiber.Ctx) (uint, error) {
	claim, _, isBusiness := GetInfoAccountFromToken(c)
	if !isBusiness || claim.BusinessId == nil {
		return 0, errors.New("conta sem estabelecimento vinculado")
	}
	return *claim.BusinessId, nil
}
