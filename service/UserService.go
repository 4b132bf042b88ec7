// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-resty/resty/v2"
	"github.com/gosimple/slug"
	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/repository"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type UserService interface {
	RegisterUser(registration view.UserRegistrationReq) (*view.User, error)
	AuthenticateUser(identifier string, password string) (*view.User, error)
	GetUserProfile(userId string, requesterId string) (*view.User, error)
	GetUsersByIds(userIds []string) ([]view.User, error)
	UpdateUserProfile(userId string, patch view.UserProfilePatch) (*view.User, error)
	AddFriend(userId string, friendId string) (*view.User, error)
	AddRelation(userId string, relationId string) (*view.User, error)
	StoreUserAvatar(userId string, avatar []byte) error
	GetUserAvatar(userId string) (*view.UserAvatar, error)
	TrackBambooMembership(userId string, bambooId string) error
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{
		repo:          repo,
		gravatar:      resty.New().SetTimeout(10 * time.Second),
		loginLimiters: map[string]*rate.Limiter{},
	}
}

type userServiceImpl struct {
	repo     repository.UserRepository
	gravatar *resty.Client

	mutex         sync.Mutex
	loginLimiters map[string]*rate.Limiter
}

func (u *userServiceImpl) RegisterUser(registration view.UserRegistrationReq) (*view.User, error) {
	dateOfBirth, err := utils.DateFromString(registration.DateOfBirth)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "dateOfBirth", "type": utils.DateFormat},
			Debug:   err.Error(),
		}
	}

	today := time.Now()
	userEntity := &entity.UserEntity{
		Username:           registration.Username,
		Email:              registration.Email,
		Password:           registration.Password,
		DateOfBirth:        dateOfBirth,
		RegistrationDate:   today,
		LastConnectionDate: today,
		Pronouns:           registration.Pronouns,
		PublicDisplayName:  registration.PublicDisplayName,
		PrivateDisplayName: registration.PrivateDisplayName,
	}
	// The record is built with the raw password so the pre-hash length rule
	// applies; only the digest is ever persisted.
	userRecord, err := entity.NewUserRecord(userEntity)
	if err != nil {
		return nil, err
	}
	userEntity.Uuid = userRecord.Uuid()
	userEntity.Password = utils.HashPassword(registration.Password)

	if err := u.checkIdentityAvailable(registration.Username, registration.Email); err != nil {
		return nil, err
	}

	userEntity.Alias, err = u.createUniqueUserAlias(registration.Username)
	if err != nil {
		return nil, err
	}

	if err := u.repo.SaveUser(userEntity); err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.DuplicateUserIdentity,
				Message: exception.DuplicateUserIdentityMsg,
				Debug:   err.Error(),
			}
		}
		return nil, err
	}

	utils.SafeAsync(func() {
		if err := u.refreshGravatar(userEntity.Uuid, userEntity.Email); err != nil {
			log.Debugf("Failed to fetch avatar for new user %s: %s", userEntity.Uuid, err.Error())
		}
	})

	return entity.MakeUserView(userEntity), nil
}

// AuthenticateUser accepts a username or an email as identifier. The
// identifier shape decides the lookup column; an identifier that is neither a
// valid username nor a valid email is rejected outright.
func (u *userServiceImpl) AuthenticateUser(identifier string, password string) (*view.User, error) {
	if !u.loginLimiter(identifier).Allow() {
		return nil, &exception.CustomError{
			Status:  http.StatusTooManyRequests,
			Code:    exception.TooManyLoginAttempts,
			Message: exception.TooManyLoginAttemptsMsg,
			Params:  map[string]interface{}{"identifier": identifier},
		}
	}

	var userEntity *entity.UserEntity
	var err error
	switch {
	case entity.IsValidUsername(identifier):
		userEntity, err = u.repo.GetUserByUsername(identifier)
	case entity.IsValidEmail(identifier):
		userEntity, err = u.repo.GetUserByEmail(identifier)
	default:
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidLoginIdentifier,
			Message: exception.InvalidLoginIdentifierMsg,
			Params:  map[string]interface{}{"identifier": identifier},
		}
	}
	if err != nil {
		return nil, err
	}
	if userEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.NoUserForIdentifier,
			Message: exception.NoUserForIdentifierMsg,
			Params:  map[string]interface{}{"identifier": identifier},
		}
	}
	if !utils.CheckPassword(password, userEntity.Password) {
		log.Debugf("Authentication failed for %v", identifier)
		return nil, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.IncorrectPassword,
			Message: exception.IncorrectPasswordMsg,
			Params:  map[string]interface{}{"identifier": identifier},
		}
	}

	userEntity.LastConnectionDate = time.Now()
	if err := u.repo.UpdateUserColumns(userEntity, []string{"last_connection_date"}); err != nil {
		return nil, err
	}

	return entity.MakeUserView(userEntity), nil
}

func (u *userServiceImpl) GetUserProfile(userId string, requesterId string) (*view.User, error) {
	userEntity, err := u.getUserEntity(userId)
	if err != nil {
		return nil, err
	}
	if requesterId == userId {
		return entity.MakeUserView(userEntity), nil
	}
	return entity.MakePublicUserView(userEntity), nil
}

func (u *userServiceImpl) GetUsersByIds(userIds []string) ([]view.User, error) {
	result := make([]view.User, 0)
	userEntities, err := u.repo.GetUsersByIds(userIds)
	if err != nil {
		return nil, err
	}
	for _, userEntity := range userEntities {
		result = append(result, *entity.MakePublicUserView(&userEntity))
	}
	return result, nil
}

// UpdateUserProfile applies a partial profile update. The fresh row is
// re-fetched, the patched copy is validated as a whole, and only the columns
// whose values actually differ are written back. A patch that changes nothing
// is an error. Every successful update also touches last_connection_date.
func (u *userServiceImpl) UpdateUserProfile(userId string, patch view.UserProfilePatch) (*view.User, error) {
	freshEntity, err := u.getUserEntity(userId)
	if err != nil {
		return nil, err
	}
	freshRecord, err := entity.NewUserRecord(freshEntity)
	if err != nil {
		// A stored row that fails validation is a data corruption signal,
		// not a user mistake.
		log.Errorf("Stored user %s no longer passes validation: %s", userId, err.Error())
		return nil, err
	}

	patched := *freshEntity
	if patch.Email != nil {
		patched.Email = *patch.Email
	}
	if patch.Password != nil {
		patched.Password = *patch.Password
	}
	if patch.Pronouns != nil {
		patched.Pronouns = *patch.Pronouns
	}
	if patch.PublicDisplayName != nil {
		patched.PublicDisplayName = *patch.PublicDisplayName
	}
	if patch.PrivateDisplayName != nil {
		patched.PrivateDisplayName = *patch.PrivateDisplayName
	}
	if patch.PublicBio != nil {
		patched.PublicBio = *patch.PublicBio
	}
	if patch.PrivateBio != nil {
		patched.PrivateBio = *patch.PrivateBio
	}

	patchedRecord, err := entity.NewUserRecord(&patched)
	if err != nil {
		return nil, err
	}
	if patch.Password != nil {
		patched.Password = utils.HashPassword(*patch.Password)
	}

	changed := patchedRecord.Changed(freshRecord)
	if len(changed) == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.NoChangesToUpdate,
			Message: exception.NoChangesToUpdateMsg,
		}
	}
	patched.LastConnectionDate = time.Now()
	changed = append(changed, "last_connection_date")

	if err := u.repo.UpdateUserColumns(&patched, changed); err != nil {
		if pgErr, ok := err.(pg.Error); ok && pgErr.IntegrityViolation() {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.DuplicateUserUpdate,
				Message: exception.DuplicateUserUpdateMsg,
				Debug:   err.Error(),
			}
		}
		return nil, err
	}

	if patch.Email != nil {
		utils.SafeAsync(func() {
			if err := u.refreshGravatar(patched.Uuid, patched.Email); err != nil {
				log.Debugf("Failed to refresh avatar for user %s: %s", patched.Uuid, err.Error())
			}
		})
	}

	return entity.MakeUserView(&patched), nil
}

func (u *userServiceImpl) AddFriend(userId string, friendId string) (*view.User, error) {
	return u.appendToUserList(userId, friendId, "friends")
}

func (u *userServiceImpl) AddRelation(userId string, relationId string) (*view.User, error) {
	return u.appendToUserList(userId, relationId, "relations")
}

// TrackBambooMembership appends the bamboo to the user's bamboos chain.
func (u *userServiceImpl) TrackBambooMembership(userId string, bambooId string) error {
	_, err := u.appendToUserList(userId, bambooId, "bamboos")
	return err
}

func (u *userServiceImpl) appendToUserList(userId string, otherId string, column string) (*view.User, error) {
	userEntity, err := u.getUserEntity(userId)
	if err != nil {
		return nil, err
	}
	if column != "bamboos" {
		if _, err := u.getUserEntity(otherId); err != nil {
			return nil, err
		}
	}

	var chain *string
	switch column {
	case "friends":
		chain = &userEntity.Friends
	case "relations":
		chain = &userEntity.Relations
	case "bamboos":
		chain = &userEntity.Bamboos
	default:
		return nil, fmt.Errorf("unknown user list column '%s'", column)
	}

	list, err := record.ParseUUIDList(*chain)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.MalformedUuidChain,
			Message: exception.MalformedUuidChainMsg,
			Debug:   err.Error(),
		}
	}
	if list.Contains(otherId) {
		return entity.MakeUserView(userEntity), nil
	}
	if err := list.Append(otherId); err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "uuid", "type": "uuid"},
			Debug:   err.Error(),
		}
	}
	*chain = list.String()

	// Revalidate the grown chain against the 100-element cap.
	userRecord, err := entity.NewUserRecord(userEntity)
	if err != nil {
		return nil, err
	}
	if err := userRecord.Set(column, *chain); err != nil {
		return nil, err
	}

	userEntity.LastConnectionDate = time.Now()
	if err := u.repo.UpdateUserColumns(userEntity, []string{column, "last_connection_date"}); err != nil {
		return nil, err
	}
	return entity.MakeUserView(userEntity), nil
}

func (u *userServiceImpl) StoreUserAvatar(userId string, avatar []byte) error {
	newAvatarChecksum := sha256.Sum256(avatar)
	avatarFromDB, err := u.GetUserAvatar(userId)
	if err != nil {
		return fmt.Errorf("failed to get user avatar: %v", err.Error())
	}
	if avatarFromDB != nil && avatarFromDB.Checksum == newAvatarChecksum {
		return nil
	}
	return u.repo.SaveUserAvatar(entity.MakeUserAvatarEntity(&view.UserAvatar{
		Uuid:     userId,
		Avatar:   avatar,
		Checksum: newAvatarChecksum,
	}))
}

func (u *userServiceImpl) GetUserAvatar(userId string) (*view.UserAvatar, error) {
	userAvatarEntity, err := u.repo.GetUserAvatar(userId)
	if err != nil {
		return nil, err
	}
	if userAvatarEntity == nil {
		return nil, nil
	}
	return entity.MakeUserAvatarView(userAvatarEntity), nil
}

// refreshGravatar pulls the gravatar image for the email and stores it as the
// user's avatar. Gravatar addresses pictures by the md5 of the lowercased
// email.
func (u *userServiceImpl) refreshGravatar(userId string, email string) error {
	emailHash := md5.Sum([]byte(entity.MakeUserEmailKey(email)))
	resp, err := u.gravatar.R().
		Get(fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=256", hex.EncodeToString(emailHash[:])))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("gravatar returned status %v", resp.StatusCode())
	}
	return u.StoreUserAvatar(userId, resp.Body())
}

func (u *userServiceImpl) getUserEntity(userId string) (*entity.UserEntity, error) {
	userEntity, err := u.repo.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	if userEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserNotFound,
			Message: exception.UserNotFoundMsg,
			Params:  map[string]interface{}{"userId": userId},
		}
	}
	return userEntity, nil
}

func (u *userServiceImpl) checkIdentityAvailable(username string, email string) error {
	existingUser, err := u.repo.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if existingUser == nil {
		existingUser, err = u.repo.GetUserByEmail(email)
		if err != nil {
			return err
		}
	}
	if existingUser != nil {
		// One deliberately vague message for both collisions.
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.DuplicateUserIdentity,
			Message: exception.DuplicateUserIdentityMsg,
		}
	}
	return nil
}

func (u *userServiceImpl) createUniqueUserAlias(username string) (string, error) {
	userAlias := slug.Make(username)
	existingUser, err := u.repo.GetUserByUsername(userAlias)
	if err != nil {
		return "", err
	}
	i := 1
	for existingUser != nil {
		userAlias = slug.Make(username + "-" + strconv.Itoa(i))
		existingUser, err = u.repo.GetUserByUsername(userAlias)
		if err != nil {
			return "", err
		}
		i++
	}
	return userAlias, nil
}

// loginLimiter returns the per-identifier rate limiter, five attempts then
// one every twelve seconds.
func (u *userServiceImpl) loginLimiter(identifier string) *rate.Limiter {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	key := strings.ToLower(identifier)
	limiter, exists := u.loginLimiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(12*time.Second), 5)
		u.loginLimiters[key] = limiter
	}
	return limiter
}
