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

package contact

import (
	"github.com/ecodeclub/portfolio/internal/contact/internal/domain"
	"github.com/ecodeclub/portfolio/internal/contact/internal/service"
	"github.com/ecodeclub/portfolio/internal/contact/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type Submission = domain.Submission
type Status = domain.Status

const (
	StatusUnread   = domain.StatusUnread
	StatusRead     = domain.StatusRead
	StatusArchived = domain.StatusArchived
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
