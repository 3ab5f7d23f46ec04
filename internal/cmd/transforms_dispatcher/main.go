// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// transforms_dispatcher generates pkg/transforms/gen_register_dtypes.go, which registers the instantiations
// of the generic kernels for each of the dtypes they support.
//
// It is run with go generate from pkg/transforms.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

type DTypeInfo struct {
	DType, GoType string
}

type MapInfo struct {
	MapName, Generic string
	DTypes           []DTypeInfo
}

type Data struct {
	Maps []MapInfo
}

var (
	// data lists the maps to register, their generic function and with which set of dtypes.
	// Float16 and BFloat16 versions of arithmetic kernels are registered by hand with priorityTyped (see half.go).
	data = Data{
		Maps: []MapInfo{
			{"copyBlocksDTypeMap", "copyBlocksGeneric", makeDTypes(true, true, true, true, true)},
			{"swapBlocksDTypeMap", "swapBlocksGeneric", makeDTypes(true, true, true, true, true)},
			{"readIndicesDTypeMap", "readIntIndicesGeneric", makeDTypes(true, true, false, false, false)},
			{"readIndicesDTypeMap", "readFloatIndicesGeneric", makeDTypes(false, false, true, false, false)},
			{"storeIntsDTypeMap", "storeIntsGeneric", makeDTypes(true, true, true, false, false)},
			{"triuDTypeMap", "execTriuGeneric", makeDTypes(true, true, true, true, true)},
			{"traceDTypeMap", "execTraceGeneric", makeDTypes(true, true, true, false, false)},
			{"eyeDTypeMap", "execEyeGeneric", makeDTypes(true, true, true, true, true)},
			{"scatterDTypeMap", "scatterGeneric", makeDTypes(true, true, true, false, false)},
			{"scatterAssignDTypeMap", "scatterAssignGeneric", makeDTypes(true, true, true, true, true)},
			{"mergeAddDTypeMap", "mergeAddGeneric", makeDTypes(true, true, true, false, false)},
			{"mergeAvgDTypeMap", "mergeAvgSignedGeneric", makeDTypes(true, false, false, false, false)},
			{"mergeAvgDTypeMap", "mergeAvgUnsignedGeneric", makeDTypes(false, true, false, false, false)},
			{"mergeAvgDTypeMap", "mergeAvgFloatGeneric", makeDTypes(false, false, true, false, false)},
			{"mergeMaxDTypeMap", "mergeMaxGeneric", makeDTypes(true, true, true, false, false)},
			{"mergeMaxIndexDTypeMap", "mergeMaxIndexGeneric", makeDTypes(true, true, true, false, false)},
			{"padDTypeMap", "execPadGeneric", makeDTypes(true, true, true, true, true)},
			{"mirrorPadDTypeMap", "execMirrorPadGeneric", makeDTypes(true, true, true, true, true)},
			{"clipDTypeMap", "clipGeneric", makeDTypes(false, false, true, false, false)},
			{"clipBPDTypeMap", "clipBPGeneric", makeDTypes(false, false, true, false, false)},
			{"tileBPDTypeMap", "tileBPGeneric", makeDTypes(true, true, true, false, false)},
		},
	}
	fileName = "gen_register_dtypes.go"
)

func makeDTypes(ints, uints, floats, floats16, boolean bool) []DTypeInfo {
	dtypes := make([]DTypeInfo, 0, 32)
	if ints {
		dtypes = append(dtypes,
			DTypeInfo{"Int8", "int8"},
			DTypeInfo{"Int16", "int16"},
			DTypeInfo{"Int32", "int32"},
			DTypeInfo{"Int64", "int64"},
		)
	}
	if uints {
		dtypes = append(dtypes,
			DTypeInfo{"Uint8", "uint8"},
			DTypeInfo{"Uint16", "uint16"},
			DTypeInfo{"Uint32", "uint32"},
			DTypeInfo{"Uint64", "uint64"},
		)
	}
	if floats {
		dtypes = append(dtypes,
			DTypeInfo{"Float32", "float32"},
			DTypeInfo{"Float64", "float64"},
		)
	}
	if floats16 {
		dtypes = append(dtypes,
			DTypeInfo{"BFloat16", "bfloat16.BFloat16"},
			DTypeInfo{"Float16", "float16.Float16"},
		)
	}
	if boolean {
		dtypes = append(dtypes,
			DTypeInfo{"Bool", "bool"},
		)
	}
	return dtypes
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	registerTemplate := template.Must(
		template.
			New(fileName).
			Parse(

				`/***** File generated by ./internal/cmd/transforms_dispatcher. Don't edit it directly. *****/

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func init() {
{{- range .Maps}}

	// DTypeMap: {{.MapName}}
{{- $mapName := .MapName }}
{{- $generic := .Generic }}
{{- range .DTypes }}
	{{$mapName}}.Register(dtypes.{{.DType}}, priorityGeneric, {{$generic}}[{{.GoType}}])
{{- end }}
{{- end }}
}
`))
	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(registerTemplate.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ transforms_dispatcher:  \tsuccessfully generated %s\n", fullPath)
}
