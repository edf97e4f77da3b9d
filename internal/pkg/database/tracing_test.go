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

package database_test

import (
	"context"
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/pkg/database"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type item struct {
	Id   int64 `gorm:"primaryKey,autoIncrement"`
	Name string
}

func TestTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	old := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(old)
	})

	db := testioc.NewSQLiteDB()
	require.NoError(t, db.Use(database.NewTracingPlugin()))
	require.NoError(t, db.AutoMigrate(&item{}))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&item{Name: "a"}).Error)
	var res []item
	require.NoError(t, db.WithContext(ctx).Find(&res).Error)
	assert.Len(t, res, 1)

	names := slice.Map(recorder.Ended(), func(idx int, src sdktrace.ReadOnlySpan) string {
		return src.Name()
	})
	assert.Contains(t, names, "items INSERT")
	assert.Contains(t, names, "items SELECT")
}
