// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"sync"

	"fillmore-labs.com/ffslint/internal/rule"
)

// Rule categories.
const (
	Illegal     = "Illegal Method Invocations"
	Naming      = "Naming"
	Structure   = "Structure"
	Suppression = "Suppression"
	Security    = "Security"
	Simplify    = "Simplification"
)

// Rule ids are a persisted contract: suppressions key off them. Never renumber.
//
// FFS00xx are the .NET rules, FFS1xxx the Go rules.

func def(id, category, title, message string) rule.Definition {
	return rule.Definition{ID: id, Category: category, Title: title, Message: message}
}

func banned(id, target, message string) rule.CallSpec {
	return rule.CallSpec{
		Definition: def(id, Illegal, "Avoid "+target, message),
		Target:     target,
		Predicate:  rule.None{},
	}
}

// Builtin returns the specifications of the bundled rules.
func Builtin() Specs {
	return Specs{
		Calls: []rule.CallSpec{
			banned("FFS0001", "System.DateTime.Now", "Call IDateTimeSource.UtcNow() rather than DateTime.Now"),
			banned("FFS0002", "System.DateTime.UtcNow", "Call IDateTimeSource.UtcNow() rather than DateTime.UtcNow"),
			banned("FFS0003", "System.DateTime.Today", "Call IDateTimeSource.UtcNow().Date rather than DateTime.Today"),
			banned("FFS0004", "System.DateTimeOffset.Now", "Call IDateTimeSource.UtcNow() rather than DateTimeOffset.Now"),
			banned("FFS0005", "System.DateTimeOffset.UtcNow", "Call IDateTimeSource.UtcNow() rather than DateTimeOffset.UtcNow"),
			banned("FFS0006", "System.Console.WriteLine", "Use an ILogger rather than Console.WriteLine"),
			{
				Definition: def("FFS0010", Illegal, "Only use Received with an expected call count",
					"Only use Received with expected call count"),
				Target:    "NSubstitute.SubstituteExtensions.Received",
				Predicate: rule.MinArgs{N: 1},
			},
			{
				Definition: def("FFS0011", Illegal, "Use DidNotReceive rather than Received(0)",
					"Use DidNotReceive rather than Received(0)"),
				Target: "NSubstitute.SubstituteExtensions.Received",
				Predicate: rule.ForbiddenArg{
					Param: "requiredNumberOfCalls",
					Kind:  rule.NumericLiteral,
					Text:  "0",
				},
			},
			{
				Definition: def("FFS0012", Illegal, "Avoid the built-in AddOrUpdate",
					"Use NonBlocking.ConcurrentDictionary AddOrUpdate rather than {0}.{1}"),
				Target:    "System.Collections.Concurrent.ConcurrentDictionary`2.AddOrUpdate",
				Predicate: rule.None{},
			},
			{
				Definition: def("FFS0014", Illegal, "Avoid Assert.True(false)",
					"Use Assert.Fail() rather than Assert.True(false)"),
				Target: "Xunit.Assert.True",
				Predicate: rule.ForbiddenArg{
					Param: "condition",
					Kind:  rule.FalseLiteral,
				},
			},
			{
				Definition: def("FFS0015", Illegal, "Avoid Assert.False(true)",
					"Use Assert.Fail() rather than Assert.False(true)"),
				Target: "Xunit.Assert.False",
				Predicate: rule.ForbiddenArg{
					Param: "condition",
					Kind:  rule.TrueLiteral,
				},
			},
			banned("FFS0031", "System.Collections.Concurrent.ConcurrentDictionary`2",
				"Use NonBlocking.ConcurrentDictionary rather than System.Collections.Concurrent.ConcurrentDictionary"),
			banned("FFS0032", "System.Threading.Thread.Sleep", "Use Task.Delay rather than Thread.Sleep"),

			banned("FFS1001", "time.Now", "Use an injected clock rather than time.Now"),
			banned("FFS1002", "context.TODO", "Pass the caller's context rather than context.TODO"),
			banned("FFS1003", "sync.Map", "Use a typed map guarded by a mutex rather than sync.Map"),
			banned("FFS1004", "net/http.Get", "Use an http.Client with a timeout rather than http.Get"),
			banned("FFS1005", "net/http.DefaultClient", "Use an http.Client with a timeout rather than http.DefaultClient"),
			{
				Definition: def("FFS1006", Security, "Avoid world-writable directories",
					"Do not create world-writable directories with {2}"),
				Target: "os.MkdirAll",
				Predicate: rule.Any{
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0777"},
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0o777"},
				},
			},
			{
				Definition: def("FFS1007", Security, "Avoid world-writable files",
					"Do not create world-writable files with {2}"),
				Target: "os.WriteFile",
				Predicate: rule.Any{
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0666"},
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0o666"},
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0777"},
					rule.ForbiddenArg{Param: "perm", Kind: rule.NumericLiteral, Text: "0o777"},
				},
			},
			{
				Definition: def("FFS1008", Simplify, "Avoid fmt.Sprintf without arguments",
					"Use the format string directly rather than fmt.Sprintf without arguments"),
				Target:    "fmt.Sprintf",
				Predicate: rule.MinArgs{N: 2},
			},
			{
				Definition: def("FFS1009", Simplify, "Avoid fmt.Errorf without arguments",
					"Use errors.New rather than fmt.Errorf without arguments"),
				Target:    "fmt.Errorf",
				Predicate: rule.MinArgs{N: 2},
			},
		},

		Hierarchies: []rule.HierarchySpec{
			{
				Definition: def("FFS0013", Structure, "Test classes should derive from TestBase",
					"Test classes should derive from TestBase"),
				Base:       "FunFair.Test.Common.TestBase",
				Mode:       rule.Require,
				Kinds:      []string{"class"},
				NameSuffix: "Tests",
			},
			{
				Definition: def("FFS1012", Structure, "Avoid embedding sync.Mutex",
					"Type {0} must not embed {1}"),
				Base: "sync.Mutex",
				Mode: rule.Forbid,
			},
		},

		Modifiers: []rule.ModifierSpec{
			{
				Definition: def("FFS0020", Structure, "Classes should be static, sealed or abstract",
					"Classes should be static, sealed or abstract"),
				Kind:    "class",
				Allowed: []string{"static", "sealed", "abstract"},
			},
			{
				Definition: def("FFS0021", Structure, "Records should be sealed",
					"Records should be sealed"),
				Kind:    "record",
				Allowed: []string{"sealed", "abstract"},
			},
			{
				Definition: def("FFS0022", Structure, "Structs should be read-only",
					"Structs should be read-only"),
				Kind:    "struct",
				Allowed: []string{"readonly"},
			},
		},

		Attributes: []rule.AttributeSpec{
			{
				Attribute: "System.Diagnostics.CodeAnalysis.SuppressMessageAttribute",
				Argument:  "Justification",
				Prefixes:  []string{"Pending"},
				Blank: def("FFS0027", Suppression, "SuppressMessage must specify a Justification",
					"SuppressMessage must specify a Justification"),
				Prefix: def("FFS0042", Suppression, "SuppressMessage must not have a pending Justification",
					"SuppressMessage must not have a pending Justification"),
			},
			{
				Attribute: "nolint",
				Argument:  "Justification",
				Prefixes:  []string{"TODO", "FIXME"},
				Blank: def("FFS1010", Suppression, "nolint directives must specify a justification",
					"nolint directive must specify a justification"),
				Prefix: def("FFS1011", Suppression, "nolint directives must not have a pending justification",
					"nolint directive must not have a pending justification"),
			},
		},

		ParameterOrders: []rule.ParameterOrderSpec{
			{
				Definition: def("FFS0019", Structure, "Parameters should be in a particular order",
					"Parameter '{0}' must be parameter {1}"),
				Preferred: []string{
					"Microsoft.Extensions.Logging.ILogger`1",
					"Microsoft.Extensions.Logging.ILogger",
					"System.Threading.CancellationToken",
				},
			},
		},
	}
}

// Default returns the catalog of bundled rules.
var Default = sync.OnceValue(func() *Catalog { return MustNew(Builtin()) })
