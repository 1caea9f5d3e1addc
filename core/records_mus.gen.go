// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptrlxDr1L1kOOWq2RnUdOwGdwΞΞ   = ord.NewPtrSer[int](varint.Int)
	ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ   = ord.NewPtrSer[float64](varint.Float64)
	sliceN1pwYvByFHvrh9BxrrΔNtAΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceOZVCFy00rxpasrNUt6tgJgΞΞ = ord.NewSliceSer[[]float32](sliceN1pwYvByFHvrh9BxrrΔNtAΞΞ)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var UserProfileMUS = userProfileMUS{}

type userProfileMUS struct{}

func (s userProfileMUS) Marshal(v UserProfile, bs []byte) (n int) {
	n = ord.Bool.Marshal(v.IsSingleParent, bs)
	n += ptrlxDr1L1kOOWq2RnUdOwGdwΞΞ.Marshal(v.ChildrenU18, bs[n:])
	n += ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Marshal(v.NetIncomeMonthlyEUR, bs[n:])
	n += ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Marshal(v.AssetsSavingsEUR, bs[n:])
	return n + ord.String.Marshal(v.Municipality, bs[n:])
}

func (s userProfileMUS) Unmarshal(bs []byte) (v UserProfile, n int, err error) {
	v.IsSingleParent, n, err = ord.Bool.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ChildrenU18, n1, err = ptrlxDr1L1kOOWq2RnUdOwGdwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NetIncomeMonthlyEUR, n1, err = ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AssetsSavingsEUR, n1, err = ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Municipality, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s userProfileMUS) Size(v UserProfile) (size int) {
	size = ord.Bool.Size(v.IsSingleParent)
	size += ptrlxDr1L1kOOWq2RnUdOwGdwΞΞ.Size(v.ChildrenU18)
	size += ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Size(v.NetIncomeMonthlyEUR)
	size += ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Size(v.AssetsSavingsEUR)
	return size + ord.String.Size(v.Municipality)
}

func (s userProfileMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.Bool.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ptrlxDr1L1kOOWq2RnUdOwGdwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrwX5IwRBkxH5wBbX4RSWCfQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var SessionRecordMUS = sessionRecordMUS{}

type sessionRecordMUS struct{}

func (s sessionRecordMUS) Marshal(v SessionRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.SessionID, bs)
	n += UserProfileMUS.Marshal(v.Profile, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s sessionRecordMUS) Unmarshal(bs []byte) (v SessionRecord, n int, err error) {
	v.SessionID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Profile, n1, err = UserProfileMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s sessionRecordMUS) Size(v SessionRecord) (size int) {
	size = ord.String.Size(v.SessionID)
	size += UserProfileMUS.Size(v.Profile)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s sessionRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = UserProfileMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var VectorSetMUS = vectorSetMUS{}

type vectorSetMUS struct{}

func (s vectorSetMUS) Marshal(v VectorSet, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Dim, bs)
	return n + sliceOZVCFy00rxpasrNUt6tgJgΞΞ.Marshal(v.Vectors, bs[n:])
}

func (s vectorSetMUS) Unmarshal(bs []byte) (v VectorSet, n int, err error) {
	v.Dim, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vectors, n1, err = sliceOZVCFy00rxpasrNUt6tgJgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s vectorSetMUS) Size(v VectorSet) (size int) {
	size = varint.Int.Size(v.Dim)
	return size + sliceOZVCFy00rxpasrNUt6tgJgΞΞ.Size(v.Vectors)
}

func (s vectorSetMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceOZVCFy00rxpasrNUt6tgJgΞΞ.Skip(bs[n:])
	n += n1
	return
}
