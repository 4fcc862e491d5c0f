package portfolio_test

import (
	"context"
	"fmt"

	"github.com/aishwary11/portfolio"
	"github.com/aishwary11/portfolio/cache"
	"github.com/aishwary11/portfolio/storage"
)

func ExampleUseTheme() {
	ctx := context.Background()
	store := portfolio.New(
		portfolio.WithStorage(storage.NewMemoryStorage()),
		portfolio.WithCache(cache.NewMemoryCache()),
	)
	defer store.Close()

	local, _ := store.Local("browser-1")

	theme := portfolio.UseTheme(local, portfolio.ThemeDark)
	fmt.Println("first paint:", theme.Value())

	theme.Sync(ctx)
	fmt.Println("after sync:", portfolio.ToggleTheme(ctx, theme))

	// A later visit from the same browser.
	again := portfolio.UseTheme(local, portfolio.ThemeDark)
	fmt.Println("first paint:", again.Value())
	fmt.Println("rerender:", again.Sync(ctx), again.Value())

	// Output:
	// first paint: dark
	// after sync: light
	// first paint: dark
	// rerender: true light
}
