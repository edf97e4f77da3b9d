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

package errs

import "github.com/ecodeclub/portfolio/internal/export/internal/domain"

var (
	SystemError        = ErrorCode{Code: 550001, Msg: "system error"}
	NoResumeData       = ErrorCode{Code: 550002, Msg: domain.ErrNoResumeData.Error()}
	PrinterUnavailable = ErrorCode{Code: 550003, Msg: domain.ErrPrinterUnavailable.Error()}
)

type ErrorCode struct {
	Code int
	Msg  string
}
