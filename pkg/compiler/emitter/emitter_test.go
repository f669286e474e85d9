package emitter_test

import (
	"strings"
	"testing"

	"github.com/agenthands/pseudoc/pkg/compiler/emitter"
	"github.com/agenthands/pseudoc/pkg/compiler/lexer"
	"github.com/agenthands/pseudoc/pkg/compiler/parser"
)

func translate(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(lexer.Scan(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return emitter.New().Emit(prog)
}

const header = "#include <iostream>\n#include <string>\nusing namespace std;\n\n"

func TestEmitWriteProgram(t *testing.T) {
	got := translate(t, "Algoritmo T\n   Escribir \"hola\"\nFinAlgoritmo")

	want := header +
		"int main() {\n" +
		"    cout << \"hola\" << endl;\n" +
		"    return 0;\n" +
		"}\n"

	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitDeclareOnceRebindAfter(t *testing.T) {
	got := translate(t, "Algoritmo T\n   x <- 5\n   x <- x + 1\n   Escribir x\nFinAlgoritmo")

	want := header +
		"int main() {\n" +
		"    int x = 5;\n" +
		"    x = x + 1;\n" +
		"    cout << x << endl;\n" +
		"    return 0;\n" +
		"}\n"

	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitCountingLoop(t *testing.T) {
	got := translate(t, "Algoritmo T\n   Para i <- 1 Hasta 3\n      Escribir i\n   FinPara\nFinAlgoritmo")

	want := header +
		"int main() {\n" +
		"    for (int i = 1; i <= 3; i++) {\n" +
		"        cout << i << endl;\n" +
		"    }\n" +
		"    return 0;\n" +
		"}\n"

	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitClosesFunctionWithoutTerminator(t *testing.T) {
	// A source missing FinAlgoritmo must still come out as a complete
	// function.
	got := translate(t, "Algoritmo T\n   Escribir \"hola\"")

	if !strings.HasSuffix(got, "    return 0;\n}\n") {
		t.Errorf("generated function is not closed:\n%s", got)
	}
}

func TestEmitIfElse(t *testing.T) {
	src := `Algoritmo T
   Si x > 1 Entonces
      Escribir "grande"
   Sino
      Escribir "chico"
   FinSi
FinAlgoritmo`

	got := translate(t, src)

	want := header +
		"int main() {\n" +
		"    if (x > 1) {\n" +
		"        cout << \"grande\" << endl;\n" +
		"    } else {\n" +
		"        cout << \"chico\" << endl;\n" +
		"    }\n" +
		"    return 0;\n" +
		"}\n"

	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitWhileAndRead(t *testing.T) {
	src := `Algoritmo T
   Leer x
   Mientras x < 10
      x <- x + 1
   FinMientras
FinAlgoritmo`

	got := translate(t, src)

	want := header +
		"int main() {\n" +
		"    cin >> x;\n" +
		"    while (x < 10) {\n" +
		"        int x = x + 1;\n" +
		"    }\n" +
		"    return 0;\n" +
		"}\n"

	// Note: Leer does not declare, so the first assignment inside the
	// loop still declares x. Best-effort translation, no semantic
	// analysis.
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitFlatAssociativityChain(t *testing.T) {
	got := translate(t, "Algoritmo T\n   x <- 1 + 2 > 3\nFinAlgoritmo")

	if !strings.Contains(got, "int x = 1 + 2 > 3;") {
		t.Errorf("expected left-to-right chain emission, got:\n%s", got)
	}
}

func TestEmitEmptyProgram(t *testing.T) {
	// No algorithm: header only.
	got := translate(t, "Escribir \"suelto\"")
	if got != header {
		t.Errorf("expected bare header for algorithm-less source, got:\n%s", got)
	}
}

func TestEmitNestedIndentation(t *testing.T) {
	src := `Algoritmo T
   Para i <- 1 Hasta 2
      Si i > 1 Entonces
         Escribir i
      FinSi
   FinPara
FinAlgoritmo`

	got := translate(t, src)

	if !strings.Contains(got, "            cout << i << endl;\n") {
		t.Errorf("expected three levels of four-space indentation, got:\n%s", got)
	}
}
