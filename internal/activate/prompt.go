package activate

import (
	"regexp"
	"strings"

	"github.com/ysusumu13/conda/internal/config"
	"github.com/ysusumu13/conda/internal/env"
)

// PromptFor는 환경 활성화 후의 프롬프트를 계산한다. 현재 프롬프트에서
// 기존 활성화 태그를 벗겨낸 뒤 환경의 태그를 새로 붙인다. 태그가 중첩되는
// 일은 없다. changeps1이 꺼져 있으면 태그 없이 벗겨낸 프롬프트만 반환한다.
func PromptFor(e *env.Environment, current string, cfg *config.Config) string {
	template := cfg.EnvPrompt
	if template == "" {
		template = config.DefaultEnvPrompt
	}
	changePS1 := cfg.IsChangePS1()

	// 환경별 .condarc 오버라이드가 전역 설정에 우선한다.
	if e.Condarc != nil {
		if e.Condarc.EnvPrompt != nil {
			template = *e.Condarc.EnvPrompt
		}
		if e.Condarc.ChangePS1 != nil {
			changePS1 = *e.Condarc.ChangePS1
		}
	}

	stripped := StripPrompt(current, template)
	if !changePS1 {
		return stripped
	}
	return renderTag(template, e) + stripped
}

// StripPrompt는 프롬프트 선두의 활성화 태그를 모두 제거한다. 비정상
// 종료된 세션이 남긴 낡은 태그가 여러 겹일 수 있으므로 반복 제거한다.
// 태그를 안전하게 식별할 수 없는 템플릿이면 프롬프트를 그대로 반환한다.
func StripPrompt(prompt, template string) string {
	re := tagPattern(template)
	if re == nil {
		return prompt
	}
	for {
		loc := re.FindStringIndex(prompt)
		if loc == nil {
			return prompt
		}
		prompt = prompt[loc[1]:]
	}
}

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

// renderTag는 템플릿의 placeholder를 환경 값으로 치환한다.
func renderTag(template string, e *env.Environment) string {
	return strings.NewReplacer(
		"{default_env}", e.Name,
		"{name}", e.Name,
		"{prefix}", e.Prefix,
	).Replace(template)
}

// tagPattern은 템플릿을 태그 인식 정규식으로 바꾼다. placeholder 자리는
// 임의 시퀀스에 대응시킨다. 리터럴 문자가 전혀 없는 템플릿은 태그 경계를
// 정할 수 없으므로 nil을 반환한다.
func tagPattern(template string) *regexp.Regexp {
	if template == "" {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("^")
	literal := 0
	last := 0
	for _, m := range placeholderRe.FindAllStringIndex(template, -1) {
		sb.WriteString(regexp.QuoteMeta(template[last:m[0]]))
		literal += m[0] - last
		sb.WriteString(".+?")
		last = m[1]
	}
	sb.WriteString(regexp.QuoteMeta(template[last:]))
	literal += len(template) - last

	if literal == 0 {
		return nil
	}
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil
	}
	return re
}
