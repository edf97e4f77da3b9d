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

package web

import (
	"github.com/ecodeclub/portfolio/internal/contact/internal/domain"
)

type CreateReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r CreateReq) toDomain() domain.Submission {
	return domain.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type CreateResp struct {
	Ref string `json:"ref"`
}

type ListReq struct {
	// 为空的时候返回全部
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type UpdateStatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type Submission struct {
	Id      int64  `json:"id"`
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Ctime   int64  `json:"ctime"`
}

func newSubmission(s domain.Submission) Submission {
	return Submission{
		Id:      s.Id,
		Ref:     s.Ref,
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
		Status:  s.Status.String(),
		Ctime:   s.Ctime.UnixMilli(),
	}
}
