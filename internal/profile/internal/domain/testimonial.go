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
	MinRating = 1
	MaxRating = 5
)

type Testimonial struct {
	Id           int64
	Uid          int64
	Name         string
	Role         string
	Company      string
	Content      string
	AvatarURL    string
	Rating       int
	DisplayOrder int
	Ctime        time.Time
	Utime        time.Time
}

func (t Testimonial) Owner() int64 {
	return t.Uid
}

func (t Testimonial) Validate() error {
	if err := required("name", t.Name, "role", t.Role, "content", t.Content); err != nil {
		return err
	}
	if t.Rating < MinRating || t.Rating > MaxRating {
		return invalid("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}
