//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口在 mobile.go 和 embed.go 中，仅在 -tags mobile 时编译；
// 普通构建只保留 Dummy，让 ./... 可以正常编译此包。
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
