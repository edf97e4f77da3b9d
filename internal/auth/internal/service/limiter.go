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
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// attemptLimiter 记录每个客户端连续失败的次数，过期之后自动解锁
type attemptLimiter struct {
	max   int
	mu    sync.Mutex
	cache *cache.Cache
}

func newAttemptLimiter(max int, lockFor time.Duration) *attemptLimiter {
	return &attemptLimiter{
		max:   max,
		cache: cache.New(lockFor, 2*lockFor),
	}
}

func (l *attemptLimiter) Allow(key string) bool {
	if l.max <= 0 {
		return true
	}
	val, ok := l.cache.Get(key)
	return !ok || val.(int) < l.max
}

// Fail 每次失败都重新计算过期时间，锁定从最后一次失败开始算
func (l *attemptLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cnt := 0
	if val, ok := l.cache.Get(key); ok {
		cnt = val.(int)
	}
	l.cache.Set(key, cnt+1, cache.DefaultExpiration)
}

func (l *attemptLimiter) Reset(key string) {
	l.cache.Delete(key)
}
