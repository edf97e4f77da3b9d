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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/portfolio/internal/auth/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCodeResult = ginx.Result{
		Code: errs.InvalidCode.Code,
		Msg:  errs.InvalidCode.Msg,
	}
	tooManyAttemptsResult = ginx.Result{
		Code: errs.TooManyAttempts.Code,
		Msg:  errs.TooManyAttempts.Msg,
	}
	gateRequiredResult = ginx.Result{
		Code: errs.GateRequired.Code,
		Msg:  errs.GateRequired.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
)
