// Copyright 2024 velours
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

package analytics

import (
	"github.com/velours/boutique/internal/analytics/internal/domain"
	"github.com/velours/boutique/internal/analytics/internal/service"
	"github.com/velours/boutique/internal/analytics/internal/web"
)

type Module struct {
	AdminHdl *web.AdminHandler
	Svc      Service
}

type Service = service.Service

type Summary = domain.Summary
