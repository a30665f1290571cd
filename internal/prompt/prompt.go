package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Confirmer는 예/아니오 확인 프롬프트를 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 testutil.FakeConfirmer를 사용한다.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// HuhConfirmer는 charmbracelet/huh 기반의 Confirmer 구현이다.
type HuhConfirmer struct {
	// Accessible은 스크린 리더 친화 모드로 폼을 실행한다.
	Accessible bool
}

var _ Confirmer = (*HuhConfirmer)(nil)

// Confirm은 확인 프롬프트를 표시한다. 기본값은 "아니오"다.
func (h *HuhConfirmer) Confirm(message string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(h.Accessible)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt.Confirm: %w", err)
	}
	return ok, nil
}
