/***** File generated by ./internal/cmd/transforms_dispatcher. Don't edit it directly. *****/

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func init() {
	// DTypeMap: copyBlocksDTypeMap
	copyBlocksDTypeMap.Register(dtypes.Int8, priorityGeneric, copyBlocksGeneric[int8])
	copyBlocksDTypeMap.Register(dtypes.Int16, priorityGeneric, copyBlocksGeneric[int16])
	copyBlocksDTypeMap.Register(dtypes.Int32, priorityGeneric, copyBlocksGeneric[int32])
	copyBlocksDTypeMap.Register(dtypes.Int64, priorityGeneric, copyBlocksGeneric[int64])
	copyBlocksDTypeMap.Register(dtypes.Uint8, priorityGeneric, copyBlocksGeneric[uint8])
	copyBlocksDTypeMap.Register(dtypes.Uint16, priorityGeneric, copyBlocksGeneric[uint16])
	copyBlocksDTypeMap.Register(dtypes.Uint32, priorityGeneric, copyBlocksGeneric[uint32])
	copyBlocksDTypeMap.Register(dtypes.Uint64, priorityGeneric, copyBlocksGeneric[uint64])
	copyBlocksDTypeMap.Register(dtypes.Float32, priorityGeneric, copyBlocksGeneric[float32])
	copyBlocksDTypeMap.Register(dtypes.Float64, priorityGeneric, copyBlocksGeneric[float64])
	copyBlocksDTypeMap.Register(dtypes.BFloat16, priorityGeneric, copyBlocksGeneric[bfloat16.BFloat16])
	copyBlocksDTypeMap.Register(dtypes.Float16, priorityGeneric, copyBlocksGeneric[float16.Float16])
	copyBlocksDTypeMap.Register(dtypes.Bool, priorityGeneric, copyBlocksGeneric[bool])

	// DTypeMap: swapBlocksDTypeMap
	swapBlocksDTypeMap.Register(dtypes.Int8, priorityGeneric, swapBlocksGeneric[int8])
	swapBlocksDTypeMap.Register(dtypes.Int16, priorityGeneric, swapBlocksGeneric[int16])
	swapBlocksDTypeMap.Register(dtypes.Int32, priorityGeneric, swapBlocksGeneric[int32])
	swapBlocksDTypeMap.Register(dtypes.Int64, priorityGeneric, swapBlocksGeneric[int64])
	swapBlocksDTypeMap.Register(dtypes.Uint8, priorityGeneric, swapBlocksGeneric[uint8])
	swapBlocksDTypeMap.Register(dtypes.Uint16, priorityGeneric, swapBlocksGeneric[uint16])
	swapBlocksDTypeMap.Register(dtypes.Uint32, priorityGeneric, swapBlocksGeneric[uint32])
	swapBlocksDTypeMap.Register(dtypes.Uint64, priorityGeneric, swapBlocksGeneric[uint64])
	swapBlocksDTypeMap.Register(dtypes.Float32, priorityGeneric, swapBlocksGeneric[float32])
	swapBlocksDTypeMap.Register(dtypes.Float64, priorityGeneric, swapBlocksGeneric[float64])
	swapBlocksDTypeMap.Register(dtypes.BFloat16, priorityGeneric, swapBlocksGeneric[bfloat16.BFloat16])
	swapBlocksDTypeMap.Register(dtypes.Float16, priorityGeneric, swapBlocksGeneric[float16.Float16])
	swapBlocksDTypeMap.Register(dtypes.Bool, priorityGeneric, swapBlocksGeneric[bool])

	// DTypeMap: readIndicesDTypeMap
	readIndicesDTypeMap.Register(dtypes.Int8, priorityGeneric, readIntIndicesGeneric[int8])
	readIndicesDTypeMap.Register(dtypes.Int16, priorityGeneric, readIntIndicesGeneric[int16])
	readIndicesDTypeMap.Register(dtypes.Int32, priorityGeneric, readIntIndicesGeneric[int32])
	readIndicesDTypeMap.Register(dtypes.Int64, priorityGeneric, readIntIndicesGeneric[int64])
	readIndicesDTypeMap.Register(dtypes.Uint8, priorityGeneric, readIntIndicesGeneric[uint8])
	readIndicesDTypeMap.Register(dtypes.Uint16, priorityGeneric, readIntIndicesGeneric[uint16])
	readIndicesDTypeMap.Register(dtypes.Uint32, priorityGeneric, readIntIndicesGeneric[uint32])
	readIndicesDTypeMap.Register(dtypes.Uint64, priorityGeneric, readIntIndicesGeneric[uint64])

	// DTypeMap: readIndicesDTypeMap
	readIndicesDTypeMap.Register(dtypes.Float32, priorityGeneric, readFloatIndicesGeneric[float32])
	readIndicesDTypeMap.Register(dtypes.Float64, priorityGeneric, readFloatIndicesGeneric[float64])

	// DTypeMap: storeIntsDTypeMap
	storeIntsDTypeMap.Register(dtypes.Int8, priorityGeneric, storeIntsGeneric[int8])
	storeIntsDTypeMap.Register(dtypes.Int16, priorityGeneric, storeIntsGeneric[int16])
	storeIntsDTypeMap.Register(dtypes.Int32, priorityGeneric, storeIntsGeneric[int32])
	storeIntsDTypeMap.Register(dtypes.Int64, priorityGeneric, storeIntsGeneric[int64])
	storeIntsDTypeMap.Register(dtypes.Uint8, priorityGeneric, storeIntsGeneric[uint8])
	storeIntsDTypeMap.Register(dtypes.Uint16, priorityGeneric, storeIntsGeneric[uint16])
	storeIntsDTypeMap.Register(dtypes.Uint32, priorityGeneric, storeIntsGeneric[uint32])
	storeIntsDTypeMap.Register(dtypes.Uint64, priorityGeneric, storeIntsGeneric[uint64])
	storeIntsDTypeMap.Register(dtypes.Float32, priorityGeneric, storeIntsGeneric[float32])
	storeIntsDTypeMap.Register(dtypes.Float64, priorityGeneric, storeIntsGeneric[float64])

	// DTypeMap: triuDTypeMap
	triuDTypeMap.Register(dtypes.Int8, priorityGeneric, execTriuGeneric[int8])
	triuDTypeMap.Register(dtypes.Int16, priorityGeneric, execTriuGeneric[int16])
	triuDTypeMap.Register(dtypes.Int32, priorityGeneric, execTriuGeneric[int32])
	triuDTypeMap.Register(dtypes.Int64, priorityGeneric, execTriuGeneric[int64])
	triuDTypeMap.Register(dtypes.Uint8, priorityGeneric, execTriuGeneric[uint8])
	triuDTypeMap.Register(dtypes.Uint16, priorityGeneric, execTriuGeneric[uint16])
	triuDTypeMap.Register(dtypes.Uint32, priorityGeneric, execTriuGeneric[uint32])
	triuDTypeMap.Register(dtypes.Uint64, priorityGeneric, execTriuGeneric[uint64])
	triuDTypeMap.Register(dtypes.Float32, priorityGeneric, execTriuGeneric[float32])
	triuDTypeMap.Register(dtypes.Float64, priorityGeneric, execTriuGeneric[float64])
	triuDTypeMap.Register(dtypes.BFloat16, priorityGeneric, execTriuGeneric[bfloat16.BFloat16])
	triuDTypeMap.Register(dtypes.Float16, priorityGeneric, execTriuGeneric[float16.Float16])
	triuDTypeMap.Register(dtypes.Bool, priorityGeneric, execTriuGeneric[bool])

	// DTypeMap: traceDTypeMap
	traceDTypeMap.Register(dtypes.Int8, priorityGeneric, execTraceGeneric[int8])
	traceDTypeMap.Register(dtypes.Int16, priorityGeneric, execTraceGeneric[int16])
	traceDTypeMap.Register(dtypes.Int32, priorityGeneric, execTraceGeneric[int32])
	traceDTypeMap.Register(dtypes.Int64, priorityGeneric, execTraceGeneric[int64])
	traceDTypeMap.Register(dtypes.Uint8, priorityGeneric, execTraceGeneric[uint8])
	traceDTypeMap.Register(dtypes.Uint16, priorityGeneric, execTraceGeneric[uint16])
	traceDTypeMap.Register(dtypes.Uint32, priorityGeneric, execTraceGeneric[uint32])
	traceDTypeMap.Register(dtypes.Uint64, priorityGeneric, execTraceGeneric[uint64])
	traceDTypeMap.Register(dtypes.Float32, priorityGeneric, execTraceGeneric[float32])
	traceDTypeMap.Register(dtypes.Float64, priorityGeneric, execTraceGeneric[float64])

	// DTypeMap: eyeDTypeMap
	eyeDTypeMap.Register(dtypes.Int8, priorityGeneric, execEyeGeneric[int8])
	eyeDTypeMap.Register(dtypes.Int16, priorityGeneric, execEyeGeneric[int16])
	eyeDTypeMap.Register(dtypes.Int32, priorityGeneric, execEyeGeneric[int32])
	eyeDTypeMap.Register(dtypes.Int64, priorityGeneric, execEyeGeneric[int64])
	eyeDTypeMap.Register(dtypes.Uint8, priorityGeneric, execEyeGeneric[uint8])
	eyeDTypeMap.Register(dtypes.Uint16, priorityGeneric, execEyeGeneric[uint16])
	eyeDTypeMap.Register(dtypes.Uint32, priorityGeneric, execEyeGeneric[uint32])
	eyeDTypeMap.Register(dtypes.Uint64, priorityGeneric, execEyeGeneric[uint64])
	eyeDTypeMap.Register(dtypes.Float32, priorityGeneric, execEyeGeneric[float32])
	eyeDTypeMap.Register(dtypes.Float64, priorityGeneric, execEyeGeneric[float64])
	eyeDTypeMap.Register(dtypes.BFloat16, priorityGeneric, execEyeGeneric[bfloat16.BFloat16])
	eyeDTypeMap.Register(dtypes.Float16, priorityGeneric, execEyeGeneric[float16.Float16])
	eyeDTypeMap.Register(dtypes.Bool, priorityGeneric, execEyeGeneric[bool])

	// DTypeMap: scatterDTypeMap
	scatterDTypeMap.Register(dtypes.Int8, priorityGeneric, scatterGeneric[int8])
	scatterDTypeMap.Register(dtypes.Int16, priorityGeneric, scatterGeneric[int16])
	scatterDTypeMap.Register(dtypes.Int32, priorityGeneric, scatterGeneric[int32])
	scatterDTypeMap.Register(dtypes.Int64, priorityGeneric, scatterGeneric[int64])
	scatterDTypeMap.Register(dtypes.Uint8, priorityGeneric, scatterGeneric[uint8])
	scatterDTypeMap.Register(dtypes.Uint16, priorityGeneric, scatterGeneric[uint16])
	scatterDTypeMap.Register(dtypes.Uint32, priorityGeneric, scatterGeneric[uint32])
	scatterDTypeMap.Register(dtypes.Uint64, priorityGeneric, scatterGeneric[uint64])
	scatterDTypeMap.Register(dtypes.Float32, priorityGeneric, scatterGeneric[float32])
	scatterDTypeMap.Register(dtypes.Float64, priorityGeneric, scatterGeneric[float64])

	// DTypeMap: scatterAssignDTypeMap
	scatterAssignDTypeMap.Register(dtypes.Int8, priorityGeneric, scatterAssignGeneric[int8])
	scatterAssignDTypeMap.Register(dtypes.Int16, priorityGeneric, scatterAssignGeneric[int16])
	scatterAssignDTypeMap.Register(dtypes.Int32, priorityGeneric, scatterAssignGeneric[int32])
	scatterAssignDTypeMap.Register(dtypes.Int64, priorityGeneric, scatterAssignGeneric[int64])
	scatterAssignDTypeMap.Register(dtypes.Uint8, priorityGeneric, scatterAssignGeneric[uint8])
	scatterAssignDTypeMap.Register(dtypes.Uint16, priorityGeneric, scatterAssignGeneric[uint16])
	scatterAssignDTypeMap.Register(dtypes.Uint32, priorityGeneric, scatterAssignGeneric[uint32])
	scatterAssignDTypeMap.Register(dtypes.Uint64, priorityGeneric, scatterAssignGeneric[uint64])
	scatterAssignDTypeMap.Register(dtypes.Float32, priorityGeneric, scatterAssignGeneric[float32])
	scatterAssignDTypeMap.Register(dtypes.Float64, priorityGeneric, scatterAssignGeneric[float64])
	scatterAssignDTypeMap.Register(dtypes.BFloat16, priorityGeneric, scatterAssignGeneric[bfloat16.BFloat16])
	scatterAssignDTypeMap.Register(dtypes.Float16, priorityGeneric, scatterAssignGeneric[float16.Float16])
	scatterAssignDTypeMap.Register(dtypes.Bool, priorityGeneric, scatterAssignGeneric[bool])

	// DTypeMap: mergeAddDTypeMap
	mergeAddDTypeMap.Register(dtypes.Int8, priorityGeneric, mergeAddGeneric[int8])
	mergeAddDTypeMap.Register(dtypes.Int16, priorityGeneric, mergeAddGeneric[int16])
	mergeAddDTypeMap.Register(dtypes.Int32, priorityGeneric, mergeAddGeneric[int32])
	mergeAddDTypeMap.Register(dtypes.Int64, priorityGeneric, mergeAddGeneric[int64])
	mergeAddDTypeMap.Register(dtypes.Uint8, priorityGeneric, mergeAddGeneric[uint8])
	mergeAddDTypeMap.Register(dtypes.Uint16, priorityGeneric, mergeAddGeneric[uint16])
	mergeAddDTypeMap.Register(dtypes.Uint32, priorityGeneric, mergeAddGeneric[uint32])
	mergeAddDTypeMap.Register(dtypes.Uint64, priorityGeneric, mergeAddGeneric[uint64])
	mergeAddDTypeMap.Register(dtypes.Float32, priorityGeneric, mergeAddGeneric[float32])
	mergeAddDTypeMap.Register(dtypes.Float64, priorityGeneric, mergeAddGeneric[float64])

	// DTypeMap: mergeAvgDTypeMap
	mergeAvgDTypeMap.Register(dtypes.Int8, priorityGeneric, mergeAvgSignedGeneric[int8])
	mergeAvgDTypeMap.Register(dtypes.Int16, priorityGeneric, mergeAvgSignedGeneric[int16])
	mergeAvgDTypeMap.Register(dtypes.Int32, priorityGeneric, mergeAvgSignedGeneric[int32])
	mergeAvgDTypeMap.Register(dtypes.Int64, priorityGeneric, mergeAvgSignedGeneric[int64])

	// DTypeMap: mergeAvgDTypeMap
	mergeAvgDTypeMap.Register(dtypes.Uint8, priorityGeneric, mergeAvgUnsignedGeneric[uint8])
	mergeAvgDTypeMap.Register(dtypes.Uint16, priorityGeneric, mergeAvgUnsignedGeneric[uint16])
	mergeAvgDTypeMap.Register(dtypes.Uint32, priorityGeneric, mergeAvgUnsignedGeneric[uint32])
	mergeAvgDTypeMap.Register(dtypes.Uint64, priorityGeneric, mergeAvgUnsignedGeneric[uint64])

	// DTypeMap: mergeAvgDTypeMap
	mergeAvgDTypeMap.Register(dtypes.Float32, priorityGeneric, mergeAvgFloatGeneric[float32])
	mergeAvgDTypeMap.Register(dtypes.Float64, priorityGeneric, mergeAvgFloatGeneric[float64])

	// DTypeMap: mergeMaxDTypeMap
	mergeMaxDTypeMap.Register(dtypes.Int8, priorityGeneric, mergeMaxGeneric[int8])
	mergeMaxDTypeMap.Register(dtypes.Int16, priorityGeneric, mergeMaxGeneric[int16])
	mergeMaxDTypeMap.Register(dtypes.Int32, priorityGeneric, mergeMaxGeneric[int32])
	mergeMaxDTypeMap.Register(dtypes.Int64, priorityGeneric, mergeMaxGeneric[int64])
	mergeMaxDTypeMap.Register(dtypes.Uint8, priorityGeneric, mergeMaxGeneric[uint8])
	mergeMaxDTypeMap.Register(dtypes.Uint16, priorityGeneric, mergeMaxGeneric[uint16])
	mergeMaxDTypeMap.Register(dtypes.Uint32, priorityGeneric, mergeMaxGeneric[uint32])
	mergeMaxDTypeMap.Register(dtypes.Uint64, priorityGeneric, mergeMaxGeneric[uint64])
	mergeMaxDTypeMap.Register(dtypes.Float32, priorityGeneric, mergeMaxGeneric[float32])
	mergeMaxDTypeMap.Register(dtypes.Float64, priorityGeneric, mergeMaxGeneric[float64])

	// DTypeMap: mergeMaxIndexDTypeMap
	mergeMaxIndexDTypeMap.Register(dtypes.Int8, priorityGeneric, mergeMaxIndexGeneric[int8])
	mergeMaxIndexDTypeMap.Register(dtypes.Int16, priorityGeneric, mergeMaxIndexGeneric[int16])
	mergeMaxIndexDTypeMap.Register(dtypes.Int32, priorityGeneric, mergeMaxIndexGeneric[int32])
	mergeMaxIndexDTypeMap.Register(dtypes.Int64, priorityGeneric, mergeMaxIndexGeneric[int64])
	mergeMaxIndexDTypeMap.Register(dtypes.Uint8, priorityGeneric, mergeMaxIndexGeneric[uint8])
	mergeMaxIndexDTypeMap.Register(dtypes.Uint16, priorityGeneric, mergeMaxIndexGeneric[uint16])
	mergeMaxIndexDTypeMap.Register(dtypes.Uint32, priorityGeneric, mergeMaxIndexGeneric[uint32])
	mergeMaxIndexDTypeMap.Register(dtypes.Uint64, priorityGeneric, mergeMaxIndexGeneric[uint64])
	mergeMaxIndexDTypeMap.Register(dtypes.Float32, priorityGeneric, mergeMaxIndexGeneric[float32])
	mergeMaxIndexDTypeMap.Register(dtypes.Float64, priorityGeneric, mergeMaxIndexGeneric[float64])

	// DTypeMap: padDTypeMap
	padDTypeMap.Register(dtypes.Int8, priorityGeneric, execPadGeneric[int8])
	padDTypeMap.Register(dtypes.Int16, priorityGeneric, execPadGeneric[int16])
	padDTypeMap.Register(dtypes.Int32, priorityGeneric, execPadGeneric[int32])
	padDTypeMap.Register(dtypes.Int64, priorityGeneric, execPadGeneric[int64])
	padDTypeMap.Register(dtypes.Uint8, priorityGeneric, execPadGeneric[uint8])
	padDTypeMap.Register(dtypes.Uint16, priorityGeneric, execPadGeneric[uint16])
	padDTypeMap.Register(dtypes.Uint32, priorityGeneric, execPadGeneric[uint32])
	padDTypeMap.Register(dtypes.Uint64, priorityGeneric, execPadGeneric[uint64])
	padDTypeMap.Register(dtypes.Float32, priorityGeneric, execPadGeneric[float32])
	padDTypeMap.Register(dtypes.Float64, priorityGeneric, execPadGeneric[float64])
	padDTypeMap.Register(dtypes.BFloat16, priorityGeneric, execPadGeneric[bfloat16.BFloat16])
	padDTypeMap.Register(dtypes.Float16, priorityGeneric, execPadGeneric[float16.Float16])
	padDTypeMap.Register(dtypes.Bool, priorityGeneric, execPadGeneric[bool])

	// DTypeMap: mirrorPadDTypeMap
	mirrorPadDTypeMap.Register(dtypes.Int8, priorityGeneric, execMirrorPadGeneric[int8])
	mirrorPadDTypeMap.Register(dtypes.Int16, priorityGeneric, execMirrorPadGeneric[int16])
	mirrorPadDTypeMap.Register(dtypes.Int32, priorityGeneric, execMirrorPadGeneric[int32])
	mirrorPadDTypeMap.Register(dtypes.Int64, priorityGeneric, execMirrorPadGeneric[int64])
	mirrorPadDTypeMap.Register(dtypes.Uint8, priorityGeneric, execMirrorPadGeneric[uint8])
	mirrorPadDTypeMap.Register(dtypes.Uint16, priorityGeneric, execMirrorPadGeneric[uint16])
	mirrorPadDTypeMap.Register(dtypes.Uint32, priorityGeneric, execMirrorPadGeneric[uint32])
	mirrorPadDTypeMap.Register(dtypes.Uint64, priorityGeneric, execMirrorPadGeneric[uint64])
	mirrorPadDTypeMap.Register(dtypes.Float32, priorityGeneric, execMirrorPadGeneric[float32])
	mirrorPadDTypeMap.Register(dtypes.Float64, priorityGeneric, execMirrorPadGeneric[float64])
	mirrorPadDTypeMap.Register(dtypes.BFloat16, priorityGeneric, execMirrorPadGeneric[bfloat16.BFloat16])
	mirrorPadDTypeMap.Register(dtypes.Float16, priorityGeneric, execMirrorPadGeneric[float16.Float16])
	mirrorPadDTypeMap.Register(dtypes.Bool, priorityGeneric, execMirrorPadGeneric[bool])

	// DTypeMap: clipDTypeMap
	clipDTypeMap.Register(dtypes.Float32, priorityGeneric, clipGeneric[float32])
	clipDTypeMap.Register(dtypes.Float64, priorityGeneric, clipGeneric[float64])

	// DTypeMap: clipBPDTypeMap
	clipBPDTypeMap.Register(dtypes.Float32, priorityGeneric, clipBPGeneric[float32])
	clipBPDTypeMap.Register(dtypes.Float64, priorityGeneric, clipBPGeneric[float64])

	// DTypeMap: tileBPDTypeMap
	tileBPDTypeMap.Register(dtypes.Int8, priorityGeneric, tileBPGeneric[int8])
	tileBPDTypeMap.Register(dtypes.Int16, priorityGeneric, tileBPGeneric[int16])
	tileBPDTypeMap.Register(dtypes.Int32, priorityGeneric, tileBPGeneric[int32])
	tileBPDTypeMap.Register(dtypes.Int64, priorityGeneric, tileBPGeneric[int64])
	tileBPDTypeMap.Register(dtypes.Uint8, priorityGeneric, tileBPGeneric[uint8])
	tileBPDTypeMap.Register(dtypes.Uint16, priorityGeneric, tileBPGeneric[uint16])
	tileBPDTypeMap.Register(dtypes.Uint32, priorityGeneric, tileBPGeneric[uint32])
	tileBPDTypeMap.Register(dtypes.Uint64, priorityGeneric, tileBPGeneric[uint64])
	tileBPDTypeMap.Register(dtypes.Float32, priorityGeneric, tileBPGeneric[float32])
	tileBPDTypeMap.Register(dtypes.Float64, priorityGeneric, tileBPGeneric[float64])
}
