package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	commonhttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

type authClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  authenticatedUser `json:"user"`
}

// loginHandler はメールアドレスからロールを解決し、署名済みトークンを発行する。
// 判定順は管理者リスト、オーナーメール、美容師コレクションの照合の順。
func (s *Server) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, commonhttp.MaxJSONRequestBody)).Decode(&req); err != nil {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "メールアドレスを入力してください"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := s.resolveUser(ctx, email)
		if err != nil {
			s.logger.Printf("ログイン時のロール解決に失敗 email=%s err=%v", email, err)
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "ログイン処理に失敗しました"})
			return
		}
		if user == nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "このメールアドレスは登録されていません"})
			return
		}

		token, err := s.issueToken(*user)
		if err != nil {
			s.logger.Printf("トークン発行に失敗 email=%s err=%v", email, err)
			s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "ログイン処理に失敗しました"})
			return
		}

		s.writeJSON(w, http.StatusOK, loginResponse{Token: token, User: *user})
	}
}

// verifyHandler は認証済みユーザーをそのまま返す。フロントのセッション確認用。
func (s *Server) verifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		if !ok {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "認証情報がありません"})
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"user": user})
	}
}

// resolveUser はメールアドレスをロールへ対応づける。該当なしは (nil, nil)。
func (s *Server) resolveUser(ctx context.Context, email string) (*authenticatedUser, error) {
	for _, admin := range s.adminEmails {
		if strings.EqualFold(admin, email) {
			return &authenticatedUser{Email: email, Role: commonhttp.RoleAdmin}, nil
		}
	}

	ownerEmail, err := s.settingsService.OwnerEmail(ctx)
	if err != nil {
		return nil, err
	}
	if ownerEmail != "" && strings.EqualFold(ownerEmail, email) {
		return &authenticatedUser{Email: email, Role: commonhttp.RoleOwner}, nil
	}

	stylist, err := s.stylistRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if stylist != nil {
		return &authenticatedUser{Email: stylist.Email, Name: stylist.Name, Role: commonhttp.RoleStylist}, nil
	}
	return nil, nil
}

// issueToken は HS256 署名のセッショントークンを発行する。
func (s *Server) issueToken(user authenticatedUser) (string, error) {
	now := time.Now()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    s.jwtIssuer,
			Audience:  jwt.ClaimStrings{s.jwtAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Name: user.Name,
		Role: user.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
// 全ロールのルートで利用するため Server に集約している。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization ヘッダーがありません"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Bearer トークンを指定してください"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "アクセストークンが空です"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			Email: claims.Subject,
			Name:  claims.Name,
			Role:  claims.Role,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole は認証済みユーザーのロールが許可リストに含まれるルートだけ通す。
func (s *Server) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := commonhttp.UserFromContext(r.Context())
			if !ok {
				s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "認証情報がありません"})
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "この操作を行う権限がありません"})
		})
	}
}

// parseAuthToken は署名検証と Issuer/Audience/有効期限の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.jwtSecret, nil
	}, jwt.WithLeeway(30*time.Second))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if s.jwtIssuer != "" && claims.Issuer != s.jwtIssuer {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	now := time.Now()
	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("アクセストークンの有効期限が切れています")
	}
	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
		return nil, fmt.Errorf("アクセストークンが無効です")
	}

	return claims, nil
}

// contains は Audience 等の検証で利用する単純な包含チェック。
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
