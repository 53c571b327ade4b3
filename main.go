package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.New()

// 可以单独编译运行的游戏目录
var games = []string{"minesweeper"}

func main() {
	fa := flag.String("addr", ":8080", "listen address")
	fb := flag.Bool("b", false, "build all game")
	flag.Parse()

	if *fb {
		err := build(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
		return
	}

	fh := http.FileServer(http.Dir("."))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/wasm.html" || filepath.Ext(r.URL.Path) == ".wasm" {
			fh.ServeHTTP(w, r)
		} else {
			http.Redirect(w, r, "/wasm.html", http.StatusFound)
		}
	})

	log.WithField("addr", *fa).Info("listening")
	err := http.ListenAndServe(*fa, nil)
	if err != nil {
		log.Fatalln(err)
	}
}

type target struct {
	game string
	out  string
	ld   string
	env  []string
}

func targets(name string) []target {
	ldSW := "-s -w"
	//goland:noinspection GoBoolExpressions
	if runtime.GOOS == `windows` {
		ldSW += " -H windowsgui"
	}
	return []target{
		{game: name, out: "..", ld: ldSW, env: []string{"CGO_ENABLED=0"}},
		{game: name, out: fmt.Sprintf("../%s.wasm", name), ld: "-s -w",
			env: []string{"CGO_ENABLED=0", "GOOS=js", "GOARCH=wasm"}},
	}
}

func (t target) build(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "go", "build", "-C", t.game, "-trimpath", "-ldflags", t.ld, "-o", t.out)
	cmd.Env = append(os.Environ(), t.env...)
	info, err := cmd.CombinedOutput()
	if err != nil {
		log.WithFields(logrus.Fields{
			"game": t.game,
			"out":  t.out,
		}).Errorf("%s", info)
		return fmt.Errorf("build %s: %w", t.out, err)
	}
	log.WithField("out", t.out).Info("built")
	return nil
}

// build 并发编译本地和wasm版本,然后生成wasm.html
func build(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range games {
		for _, t := range targets(name) {
			eg.Go(func() error { return t.build(ctx) })
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	t, err := template.New("game").Parse(`<html>
<head>
    <meta charset="utf-8">
    <title>Games</title>
</head>
<body>
<script src="https://cdn.jsdelivr.net/gh/golang/go/misc/wasm/wasm_exec.js"></script>
<script>
    if (!WebAssembly.instantiateStreaming) {
        WebAssembly.instantiateStreaming = async (resp, importObject) => {
            const source = await (await resp).arrayBuffer();
            return await WebAssembly.instantiate(source, importObject);
        };
    }
    function run(wasm) {
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch(wasm), go.importObject).then((res) => {
            go.run(res.instance);
            WebAssembly.instantiate(res.module, go.importObject);
        }).catch((err) => {
            console.error(err);
        });
    }
</script>
<ul>
{{range $i,$v := .games -}}
<li><button onClick="run('{{$v}}.wasm');">Run {{$v}}</button></li>
{{end -}}
</ul>
</body>
</html>`)
	if err != nil {
		return err
	}

	fw, err := os.Create("wasm.html")
	if err != nil {
		return err
	}
	defer fw.Close()

	return t.Execute(fw, map[string]any{
		"games": games,
	})
}
