//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/curves.yaml 复制到 mobile/data/：
//
//	make prepare-mobile
package mobile

import "embed"

//go:embed data/curves.yaml
var dataFS embed.FS
