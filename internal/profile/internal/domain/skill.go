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

import "time"

const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)

type Skill struct {
	Id           int64
	Uid          int64
	Name         string
	Category     string
	Level        int
	DisplayOrder int
	Ctime        time.Time
	Utime        time.Time
}

func (s Skill) Owner() int64 {
	return s.Uid
}

func (s Skill) Validate() error {
	if err := required("name", s.Name, "category", s.Category); err != nil {
		return err
	}
	if s.Level < MinSkillLevel || s.Level > MaxSkillLevel {
		return invalid("level must be between %d and %d", MinSkillLevel, MaxSkillLevel)
	}
	return nil
}

// LevelLabel 将 1-10 的等级映射为五档描述，恰好落在阈值上的取更高一档
func LevelLabel(level int) string {
	switch {
	case level >= 9:
		return "Expert"
	case level >= 7:
		return "Advanced"
	case level >= 5:
		return "Intermediate"
	case level >= 3:
		return "Beginner"
	default:
		return "Novice"
	}
}
