// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/ecodeclub/portfolio/internal/auth/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const gateSubject = "admin-gate"

type GateService interface {
	// Verify 访问码正确的时候返回令牌，client 用来限制暴力尝试
	Verify(client, code string) (string, error)
	// Check 令牌是否有效，没有过期
	Check(token string) error
	TTL() time.Duration
}

type gateService struct {
	gate    domain.Gate
	limiter *attemptLimiter
	nowFunc func() time.Time
}

func NewGateService(gate domain.Gate) GateService {
	return &gateService{
		gate:    gate,
		limiter: newAttemptLimiter(gate.MaxAttempts, gate.LockFor),
		nowFunc: time.Now,
	}
}

func (s *gateService) Verify(client, code string) (string, error) {
	if !s.limiter.Allow(client) {
		return "", domain.ErrTooManyAttempts
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.gate.SecretCode)) != 1 {
		s.limiter.Fail(client)
		return "", domain.ErrInvalidCode
	}
	s.limiter.Reset(client)
	now := s.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.gate.TTL)),
		Subject:   gateSubject,
	})
	return token.SignedString(s.gate.SigningKey)
}

func (s *gateService) Check(token string) error {
	if token == "" {
		return domain.ErrGateRequired
	}
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.gate.SigningKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(gateSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.nowFunc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrGateRequired, err)
	}
	return nil
}

func (s *gateService) TTL() time.Duration {
	return s.gate.TTL
}
