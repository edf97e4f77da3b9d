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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/portfolio/internal/pkg/database"
	spanKey             = "tracing:span"
)

// TracingPlugin 为每一次数据库操作创建一个 span
// 没有配置 tracer provider 的时候 otel 使用 noop 实现
type TracingPlugin struct {
	tracer trace.Tracer
}

func NewTracingPlugin() *TracingPlugin {
	return &TracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *TracingPlugin) Name() string {
	return "TracingPlugin"
}

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op       string
		name     string
		register func(name string, before, after func(*gorm.DB)) error
	}{
		{op: "SELECT", name: "gorm:query", register: func(name string, before, after func(*gorm.DB)) error {
			if err := cb.Query().Before(name).Register("tracing:before_query", before); err != nil {
				return err
			}
			return cb.Query().After(name).Register("tracing:after_query", after)
		}},
		{op: "INSERT", name: "gorm:create", register: func(name string, before, after func(*gorm.DB)) error {
			if err := cb.Create().Before(name).Register("tracing:before_create", before); err != nil {
				return err
			}
			return cb.Create().After(name).Register("tracing:after_create", after)
		}},
		{op: "UPDATE", name: "gorm:update", register: func(name string, before, after func(*gorm.DB)) error {
			if err := cb.Update().Before(name).Register("tracing:before_update", before); err != nil {
				return err
			}
			return cb.Update().After(name).Register("tracing:after_update", after)
		}},
		{op: "DELETE", name: "gorm:delete", register: func(name string, before, after func(*gorm.DB)) error {
			if err := cb.Delete().Before(name).Register("tracing:before_delete", before); err != nil {
				return err
			}
			return cb.Delete().After(name).Register("tracing:after_delete", after)
		}},
		{op: "RAW", name: "gorm:raw", register: func(name string, before, after func(*gorm.DB)) error {
			if err := cb.Raw().Before(name).Register("tracing:before_raw", before); err != nil {
				return err
			}
			return cb.Raw().After(name).Register("tracing:after_raw", after)
		}},
	}
	for _, h := range hooks {
		if err := h.register(h.name, p.before(h.op), p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *TracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.operation", op)))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *TracingPlugin) after(db *gorm.DB) {
	val, ok := db.Get(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", db.Dialector.Name()),
		attribute.String("db.table", db.Statement.Table),
		attribute.String("db.statement", db.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	)
	// 查不到数据是业务上的正常情况
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
