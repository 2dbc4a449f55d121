package runtime

import (
	"strings"
	"testing"

	"github.com/tsdownlevel/tsdownlevel/internal/transform"
)

func TestAnyNeededFalseForEmptyFlags(t *testing.T) {
	if AnyNeeded(transform.HelperFlags{}) {
		t.Fatal("expected no helper needed for zero-value flags")
	}
}

func TestAssembleEmptyForNoFlags(t *testing.T) {
	if got := Assemble(transform.HelperFlags{}); got != "" {
		t.Fatalf("Assemble(zero flags) = %q, want empty", got)
	}
}

func TestAssembleIncludesExtendsHelper(t *testing.T) {
	out := Assemble(transform.HelperFlags{Extends: true})
	if !strings.Contains(out, "var __extends") {
		t.Fatalf("expected __extends helper in output, got: %s", out)
	}
	if strings.Contains(out, "__assign") {
		t.Fatalf("did not expect __assign helper, got: %s", out)
	}
}

func TestAssembleOrdersImportStarDependenciesBeforeImportStar(t *testing.T) {
	out := Assemble(transform.HelperFlags{ImportStar: true})
	createBindingIdx := strings.Index(out, "__createBinding")
	setDefaultIdx := strings.Index(out, "__setModuleDefault")
	importStarIdx := strings.Index(out, "var __importStar")
	if createBindingIdx == -1 || setDefaultIdx == -1 || importStarIdx == -1 {
		t.Fatalf("expected all three helpers present, got: %s", out)
	}
	if !(createBindingIdx < importStarIdx && setDefaultIdx < importStarIdx) {
		t.Fatalf("expected __createBinding and __setModuleDefault to precede __importStar")
	}
}

func TestAssembleMultipleHelpersSeparatedByBlankLine(t *testing.T) {
	out := Assemble(transform.HelperFlags{Extends: true, Assign: true})
	if !strings.Contains(out, "__extends") || !strings.Contains(out, "__assign") {
		t.Fatalf("expected both helpers present, got: %s", out)
	}
	if !strings.Contains(out, "\n\n") {
		t.Fatalf("expected a blank line between helpers, got: %s", out)
	}
}

func TestExportStarImpliesCreateBinding(t *testing.T) {
	out := Assemble(transform.HelperFlags{ExportStar: true})
	if !strings.Contains(out, "__createBinding") {
		t.Fatalf("expected __createBinding pulled in for __exportStar, got: %s", out)
	}
}
