package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// authTokenTTL matches the JWT expiry and the Redis session TTL.
const authTokenTTL = 72 * time.Hour

// verifyPasswordComplexity checks that the password contains at least one lowercase letter,
// one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw) // non-alphanumeric
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// RegisterUser creates a new student account, issues a token, and registers its session.
func (s *DefaultUserService) RegisterUser(req RegistrationRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	user := models.User{
		ID:                     uuid.New().String(),
		Name:                   req.Name,
		Email:                  email,
		PasswordHash:           string(hashedPassword),
		College:                req.College,
		Course:                 req.Course,
		Semester:               req.Semester,
		Role:                   models.RoleStudent,
		NotificationPermission: models.PermissionDefault,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:    user.ID,
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// AuthenticateUser verifies credentials and issues a fresh session token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueToken(userRec)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Role:  userRec.Role,
	}, nil
}

// issueToken generates a JWT and registers its hash in the session cache.
func (s *DefaultUserService) issueToken(u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, authTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", err
	}
	client := utils.GetAuthCacheClient()
	if err := utils.SaveSessionToken(client, u.ID, utils.HashToken(token), authTokenTTL); err != nil {
		utils.GetLogger().Error("Failed to save session token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// RevokeUserAuthToken signs out a single session.
func (s *DefaultUserService) RevokeUserAuthToken(userID, tokenHash string) error {
	return utils.DeleteSessionToken(utils.GetAuthCacheClient(), userID, tokenHash)
}

// RevokeAllSessions signs the user out everywhere.
func (s *DefaultUserService) RevokeAllSessions(userID string) error {
	return utils.DeleteAllSessionTokens(utils.GetAuthCacheClient(), userID)
}

// UpdateUserPassword verifies the current password, stores the new hash, and
// revokes every existing session.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, map[string]interface{}{
		"password_hash": string(hashed),
		"updated_at":    time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.RevokeAllSessions(userID); err != nil {
		utils.GetLogger().Warn("Failed to revoke sessions after password change",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}
