// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

//ListMethod 列出导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	return ListMethodByType(typ)
}

//ListMethodByType 列出类型导出的方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

//ListActionMethod 列出 action 的 Get<Name> 方法, 只保留 tymap 中出现的 Name
func ListActionMethod(action interface{}, tymap map[string]int32) map[string]reflect.Method {
	all := ListMethod(action)
	methods := make(map[string]reflect.Method)
	for name := range tymap {
		if m, ok := all["Get"+name]; ok {
			methods["Get"+name] = m
		}
	}
	return methods
}

//ExecutorAction action 都实现 GetTy
type ExecutorAction interface {
	GetTy() int32
}

var nilValue = reflect.ValueOf(nil)

//GetActionValue 根据 ty 找到 action 名字, 并取出对应的参数
func GetActionValue(action interface{}, funclist map[string]reflect.Method, tymap map[string]int32) (string, int32, reflect.Value) {
	a, ok := action.(ExecutorAction)
	if !ok {
		return "", 0, nilValue
	}
	ty := a.GetTy()
	var name string
	for k, v := range tymap {
		if v == ty {
			name = k
			break
		}
	}
	if name == "" {
		return "", 0, nilValue
	}
	method, ok := funclist["Get"+name]
	if !ok {
		return "", 0, nilValue
	}
	val := method.Func.Call([]reflect.Value{reflect.ValueOf(action)})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", 0, nilValue
	}
	return name, ty, val[0]
}

//IsOK 检查返回值个数以及可导出
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

//IsNilVal nil 或者无效的值
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}
