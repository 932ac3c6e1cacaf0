package wizard

import (
	"testing"

	"github.com/appdraft/appdraft/hamlet"
)

func TestNamePatterns(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	must.True(projectNamePattern.MatchString("my-app"))
	must.True(projectNamePattern.MatchString("demo_2"))
	wont.True(projectNamePattern.MatchString(""))
	wont.True(projectNamePattern.MatchString("my app"))

	must.True(appNamePattern.MatchString("demo_app"))
	must.True(appNamePattern.MatchString("_private"))
	wont.True(appNamePattern.MatchString("Demo"))
	wont.True(appNamePattern.MatchString("2fast"))

	must.True(packagePattern.MatchString("com.example.app"))
	wont.True(packagePattern.MatchString("com"))
	wont.True(packagePattern.MatchString("Com.Example"))
}

func TestSuggestAppName(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("my_app", suggestAppName("my-app"))
	must.Equal("demo", suggestAppName("demo"))
	must.Equal("my_app", suggestAppName("123"))
}

func TestFirstOf(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal("given", firstOf([]string{"given", "extra"}, "fallback"))
	must.Equal("fallback", firstOf(nil, "fallback"))
}
