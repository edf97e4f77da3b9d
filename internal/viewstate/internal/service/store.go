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

	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
)

// Store 持有当前的主题和展示模式，每次变更之后同步通知订阅者
type Store struct {
	mu     sync.RWMutex
	state  domain.State
	nextID int
	subs   map[int]func(domain.State)
}

func NewStore(initial domain.State) *Store {
	if !initial.Theme.Valid() {
		initial.Theme = domain.DefaultTheme
	}
	if !initial.Mode.Valid() {
		initial.Mode = domain.DefaultMode
	}
	return &Store{
		state: initial,
		subs:  make(map[int]func(domain.State)),
	}
}

func (s *Store) Current() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) SetTheme(theme domain.Theme) error {
	if !theme.Valid() {
		return domain.ErrInvalidTheme
	}
	s.update(func(st *domain.State) {
		st.Theme = theme
	})
	return nil
}

func (s *Store) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return domain.ErrInvalidMode
	}
	s.update(func(st *domain.State) {
		st.Mode = mode
	})
	return nil
}

// Subscribe 返回的函数用于取消订阅，可以重复调用
func (s *Store) Subscribe(fn func(domain.State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) update(fn func(st *domain.State)) {
	s.mu.Lock()
	fn(&s.state)
	state := s.state
	// 在锁外面回调，订阅者里面可以再次读取 Store
	subs := make([]func(domain.State), 0, len(s.subs))
	for i := 0; i < s.nextID; i++ {
		if sub, ok := s.subs[i]; ok {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()
	for _, sub := range subs {
		sub(state)
	}
}
