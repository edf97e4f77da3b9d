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

package domain

import "errors"

var (
	ErrInvalidTheme = errors.New("invalid theme")
	ErrInvalidMode  = errors.New("invalid view mode")
)

type Theme string

const (
	ThemeMinimal Theme = "minimal"
	ThemeDark    Theme = "dark"
	ThemeAurora  Theme = "aurora"
	ThemeGlass   Theme = "glass"

	DefaultTheme = ThemeMinimal
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeMinimal, ThemeDark, ThemeAurora, ThemeGlass:
		return true
	default:
		return false
	}
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme 未知的值返回默认主题
func ParseTheme(val string) Theme {
	t := Theme(val)
	if t.Valid() {
		return t
	}
	return DefaultTheme
}

type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeStory     Mode = "story"
	ModeRecruiter Mode = "recruiter"
	ModeClient    Mode = "client"

	DefaultMode = ModeClient
)

func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeStory, ModeRecruiter, ModeClient:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode 未知的值返回默认模式
func ParseMode(val string) Mode {
	m := Mode(val)
	if m.Valid() {
		return m
	}
	return DefaultMode
}

type State struct {
	Theme Theme
	Mode  Mode
}

func DefaultState() State {
	return State{
		Theme: DefaultTheme,
		Mode:  DefaultMode,
	}
}
