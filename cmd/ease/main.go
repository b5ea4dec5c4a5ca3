// ease 在命令行中计算和列出缓动曲线
//
// 用法：
//
//	ease calc "out elastic" 0 0.25 0.5 1
//	ease table --steps 20 --format json
//	ease list
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/easing/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run 执行命令并返回退出码
// 命令自身已输出的错误（ExitError）不重复打印，其余错误写到 stderr
func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	code := cli.GetExitCode(err)
	if code == cli.ExitFailure {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return code
}
