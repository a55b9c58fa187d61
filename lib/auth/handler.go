package auth

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/db"
	"ats-backend/lib/smtp"
	usersstore "ats-backend/lib/users/store"
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	dbmodels "ats-backend/models/db"
)

type Provider interface {
	SignUp(data authapimodels.SignUpRequest) (authapimodels.JWTResponse, error)
	SignIn(login, password string) (authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) SignUp(data authapimodels.SignUpRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	existedRec, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("user lookup error")
		return authapimodels.JWTResponse{}, err
	}
	if existedRec != nil {
		return authapimodels.JWTResponse{}, errors.New("a user with this email already exists")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		logger.WithError(err).Error("password hashing error")
		return authapimodels.JWTResponse{}, err
	}
	userName, err := i.store.NextUserName()
	if err != nil {
		logger.WithError(err).Error("username generation error")
		return authapimodels.JWTResponse{}, err
	}
	rec := dbmodels.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		UserName:  userName,
		Email:     data.Email,
		Password:  hash,
		Role:      models.UserRoleRecruiter,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user creation error")
		return authapimodels.JWTResponse{}, err
	}
	i.sendWelcomeMail(rec)
	return i.tokenPair(id, rec.GetFullName(), rec.Role)
}

func (i impl) SignIn(login, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("login", login)
	user, err := i.store.FindByLogin(login)
	if err != nil {
		logger.WithError(err).Error("user lookup error")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this login")
		return authapimodels.JWTResponse{}, errors.New("invalid login or password")
	}
	if !authutils.CheckPassword(password, user.Password) {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid login or password")
	}
	return i.tokenPair(user.ID, user.GetFullName(), user.Role)
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	return i.tokenPair(user.ID, user.GetFullName(), user.Role)
}

func (i impl) tokenPair(userID, name string, role models.UserRole) (authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		log.WithError(err).Error("JWT generation error")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		log.WithError(err).Error("refresh JWT generation error")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) sendWelcomeMail(user dbmodels.User) {
	message := fmt.Sprintf("Welcome aboard, %s!\nYour recruiter username is %s.", user.GetFullName(), user.UserName)
	err := smtp.Instance.SendEMail(user.Email, message, "Welcome")
	if err != nil {
		// mail failure must not fail the registration
		log.WithError(err).WithField("email", user.Email).Error("welcome mail send error")
	}
}
