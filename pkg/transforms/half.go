// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import "github.com/gomlx/ndtransforms/pkg/core/dtypes"

// Arithmetic on Float16 and BFloat16 tensors upcasts them to float32, runs the float32 kernel and converts
// the result back.
func init() {
	for _, dtype := range []dtypes.DType{dtypes.Float16, dtypes.BFloat16} {
		readIndicesDTypeMap.Register(dtype, priorityTyped, readHalfIndices)
		storeIntsDTypeMap.Register(dtype, priorityTyped, storeIntsHalf)
		traceDTypeMap.Register(dtype, priorityTyped, execTraceHalf)
		scatterDTypeMap.Register(dtype, priorityTyped, scatterHalf)
		mergeAddDTypeMap.Register(dtype, priorityTyped, mergeHalf(mergeAddGeneric[float32]))
		mergeAvgDTypeMap.Register(dtype, priorityTyped, mergeHalf(mergeAvgFloatGeneric[float32]))
		mergeMaxDTypeMap.Register(dtype, priorityTyped, mergeHalf(mergeMaxGeneric[float32]))
		mergeMaxIndexDTypeMap.Register(dtype, priorityTyped, mergeMaxIndexHalf)
		clipDTypeMap.Register(dtype, priorityTyped, clipHalf)
		clipBPDTypeMap.Register(dtype, priorityTyped, clipBPHalf)
		tileBPDTypeMap.Register(dtype, priorityTyped, tileBPHalf)
	}
}
