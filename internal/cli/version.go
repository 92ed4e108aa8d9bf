package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

// Version은 빌드 시 ldflags로 주입된다.
var Version = "dev"

func (a *App) newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "버전을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			if check {
				a.checkLatest(cmd)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "GitHub 최신 릴리스와 비교")
	return cmd
}

// checkLatest는 네트워크나 태그 조회가 실패해도 조용히 넘어간다. 버전
// 출력 자체를 막을 이유가 없다.
func (a *App) checkLatest(cmd *cobra.Command) {
	githubTag := &latest.GithubTag{
		Owner:      "ysusumu13",
		Repository: "conda",
	}

	res, err := latest.Check(githubTag, strings.TrimPrefix(Version, "v"))
	if err != nil {
		a.Log.Debug("최신 버전 확인 실패", zap.Error(err))
		return
	}
	if res.Outdated {
		fmt.Fprintf(cmd.ErrOrStderr(), "새 버전 %s가 있습니다 (현재 %s)\n", res.Current, Version)
	}
}
