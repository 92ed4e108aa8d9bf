package shell

// posixHook은 bash와 zsh에서 공유하는 conda 래퍼 함수 본문이다. 엔진이
// 출력한 값을 전부 로컬 변수로 받아둔 뒤에야 세션을 변경하므로, 중간
// 단계가 실패하면 셸 상태는 그대로 남는다.
const posixHook = `conda() {
  local ref newpath newps1 vars line name
  case "$1" in
  activate)
    newpath="$(command conda activate "${@:2}")" || return $?
    ref="${2:-base}"
    newps1="$(command conda setps1 "$ref" "${PS1-}")" || return $?
    vars="$(command conda vars "$ref")" || return $?
    for name in ${CONDA_ENV_VARS-}; do unset "$name"; done
    if [ -z "${CONDA_DEFAULT_ENV-}" ]; then
      CONDA_OLD_PS1="${PS1-}"
    fi
    export PATH="$newpath"
    PS1="$newps1"
    CONDA_DEFAULT_ENV="$ref"
    CONDA_PREFIX="${newpath%%:*}"
    CONDA_PREFIX="${CONDA_PREFIX%/bin}"
    export CONDA_DEFAULT_ENV CONDA_PREFIX CONDA_OLD_PS1
    CONDA_ENV_VARS=""
    while IFS= read -r line; do
      [ -n "$line" ] || continue
      export "$line"
      CONDA_ENV_VARS="$CONDA_ENV_VARS ${line%%=*}"
    done <<EOF
$vars
EOF
    export CONDA_ENV_VARS="${CONDA_ENV_VARS# }"
    ;;
  deactivate)
    newpath="$(command conda deactivate "${@:2}")" || return $?
    export PATH="$newpath"
    if [ -n "${CONDA_OLD_PS1-}" ]; then
      PS1="$CONDA_OLD_PS1"
    fi
    for name in ${CONDA_ENV_VARS-}; do unset "$name"; done
    unset CONDA_DEFAULT_ENV CONDA_PREFIX CONDA_OLD_PS1 CONDA_ENV_VARS
    ;;
  *)
    command conda "$@"
    ;;
  esac
}
`

// fish는 PS1이 없으므로 프롬프트 태그를 CONDA_PROMPT_MODIFIER로 내보내고
// fish_prompt에서 참조하게 한다.
const fishHook = `function conda
  switch "$argv[1]"
  case activate
    set -l newpath (command conda activate $argv[2..]); or return $status
    set -l ref $argv[2]
    test -n "$ref"; or set ref base
    set -l modifier (command conda setps1 $ref ""); or return $status
    set -l vars (command conda vars $ref); or return $status
    for name in $CONDA_ENV_VARS
      set -e $name
    end
    set -gx PATH (string split : $newpath)
    set -gx CONDA_PROMPT_MODIFIER $modifier
    set -gx CONDA_DEFAULT_ENV $ref
    set -l first (string split : $newpath)[1]
    set -gx CONDA_PREFIX (string replace -r '/bin$' '' $first)
    set -l names
    for line in $vars
      set -l kv (string split -m 1 = $line)
      set -gx $kv[1] $kv[2]
      set -a names $kv[1]
    end
    set -gx CONDA_ENV_VARS $names
  case deactivate
    set -l newpath (command conda deactivate $argv[2..]); or return $status
    set -gx PATH (string split : $newpath)
    for name in $CONDA_ENV_VARS
      set -e $name
    end
    set -e CONDA_PROMPT_MODIFIER CONDA_DEFAULT_ENV CONDA_PREFIX CONDA_ENV_VARS
  case '*'
    command conda $argv
  end
end
`

// Hook은 셸별 conda 래퍼 함수 정의를 반환한다.
func Hook(shellType string) string {
	switch shellType {
	case "bash":
		return "# conda shell integration (bash)\n" + posixHook
	case "zsh":
		return "# conda shell integration (zsh)\n" + posixHook
	case "fish":
		return "# conda shell integration (fish)\n" + fishHook
	default:
		return ""
	}
}

// InitLine은 셸 RC 파일에 추가할 hook 로드 구문을 반환한다.
func InitLine(shellType string) string {
	switch shellType {
	case "bash", "zsh":
		return "# conda shell integration\neval \"$(conda hook --shell " + shellType + ")\"\n"
	case "fish":
		return "# conda shell integration\ncommand conda hook --shell fish | source\n"
	default:
		return ""
	}
}
