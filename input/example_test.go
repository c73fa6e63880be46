package input_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/katalvlaran/advent/input"
	"github.com/spf13/afero"
)

// ExampleCache_Input fetches once from a stand-in remote, then serves the
// stored copy.
func ExampleCache_Input() {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = io.WriteString(w, "3   4\n4   3\n")
	}))
	defer srv.Close()

	cfg := input.DefaultConfig()
	cfg.Endpoint = srv.URL + "/{year}/day/{day}/input"
	cfg.Cookie = "session=example"

	cache, err := input.New(cfg, input.WithFs(afero.NewMemMapFs()))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < 2; i++ {
		text, err := cache.Input(context.Background(), 2024, 1)
		fmt.Printf("%q %v requests=%d\n", text, err, requests.Load())
	}

	_, err = cache.Input(context.Background(), 2024, 26)
	fmt.Println(err)

	// Output:
	// "3   4\n4   3\n" <nil> requests=1
	// "3   4\n4   3\n" <nil> requests=1
	// input: invalid argument: year=2024 day=26 (want year >= 2015, day in 1..25)
}
