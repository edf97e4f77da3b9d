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
	"testing"
	"time"

	"github.com/ecodeclub/portfolio/internal/auth/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate() *gateService {
	return NewGateService(domain.Gate{
		SecretCode:  "ADMIN2024",
		SigningKey:  []byte("gate-key"),
		TTL:         10 * time.Minute,
		MaxAttempts: 3,
		LockFor:     time.Minute,
	}).(*gateService)
}

func TestGateService_Verify(t *testing.T) {
	svc := newTestGate()
	_, err := svc.Verify("10.0.0.1", "admin2024")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	token, err := svc.Verify("10.0.0.1", "ADMIN2024")
	require.NoError(t, err)
	assert.NoError(t, svc.Check(token))

	// 令牌不携带身份
	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, gateSubject, claims.Subject)
	assert.Equal(t, 10*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestGateService_TooManyAttempts(t *testing.T) {
	svc := newTestGate()
	for i := 0; i < 3; i++ {
		_, err := svc.Verify("10.0.0.1", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCode)
	}
	// 超过次数之后正确的访问码也不行
	_, err := svc.Verify("10.0.0.1", "ADMIN2024")
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	// 其它客户端不受影响
	_, err = svc.Verify("10.0.0.2", "ADMIN2024")
	assert.NoError(t, err)

	svc.limiter.Reset("10.0.0.1")
	_, err = svc.Verify("10.0.0.1", "ADMIN2024")
	assert.NoError(t, err)
}

func TestGateService_Check(t *testing.T) {
	svc := newTestGate()
	valid, err := svc.Verify("10.0.0.1", "ADMIN2024")
	require.NoError(t, err)

	now := time.Now()
	sign := func(claims jwt.RegisteredClaims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	testCases := []struct {
		name    string
		token   string
		before  func()
		wantErr error
	}{
		{
			name:  "有效",
			token: valid,
		},
		{
			name:    "没有令牌",
			wantErr: domain.ErrGateRequired,
		},
		{
			name:    "格式错误",
			token:   "not-a-jwt",
			wantErr: domain.ErrGateRequired,
		},
		{
			name: "过期",
			token: sign(jwt.RegisteredClaims{
				Subject:   gateSubject,
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
			}, jwt.SigningMethodHS256, []byte("gate-key")),
			wantErr: domain.ErrGateRequired,
		},
		{
			name: "密钥不对",
			token: sign(jwt.RegisteredClaims{
				Subject:   gateSubject,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			}, jwt.SigningMethodHS256, []byte("other-key")),
			wantErr: domain.ErrGateRequired,
		},
		{
			name: "用途不对",
			token: sign(jwt.RegisteredClaims{
				Subject:   "someone",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			}, jwt.SigningMethodHS256, []byte("gate-key")),
			wantErr: domain.ErrGateRequired,
		},
		{
			name: "没有过期时间",
			token: sign(jwt.RegisteredClaims{
				Subject: gateSubject,
			}, jwt.SigningMethodHS256, []byte("gate-key")),
			wantErr: domain.ErrGateRequired,
		},
		{
			name: "签名算法不对",
			token: sign(jwt.RegisteredClaims{
				Subject:   gateSubject,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			}, jwt.SigningMethodHS512, []byte("gate-key")),
			wantErr: domain.ErrGateRequired,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Check(tc.token), tc.wantErr)
		})
	}
}

func TestGateService_Expired(t *testing.T) {
	svc := newTestGate()
	token, err := svc.Verify("10.0.0.1", "ADMIN2024")
	require.NoError(t, err)
	svc.nowFunc = func() time.Time {
		return time.Now().Add(11 * time.Minute)
	}
	assert.ErrorIs(t, svc.Check(token), domain.ErrGateRequired)
}
