// Package watchfolio computes the analytics of a personal watchlist of
// securities: stocks, funds and cryptocurrencies, owned or only watched.
//
// The core functionalities include:
//   - Returns: equity, cost basis, dollar and percentage returns of a holding,
//     their totals across holdings, and compound average returns per year or
//     any other period.
//   - Rankings: best and worst holdings, holdings ranked by return, and the
//     winners and losers that perform well (or badly) both in percentage and
//     in dollars.
//   - Charts: a combined percentage series summing each holding's price
//     history, aligned on the most recent price.
//   - Watchlists: reading the human-edited watchlists file that records the
//     lots bought, and merging those lots into freshly fetched holdings.
//
// All calculations are pure functions of their inputs. Undefined results (a
// return on nothing invested, a growth rate over no time) are NaN or Inf
// rather than errors, the caller checks them before display.
//
// Prices are fetched by the twelvedata package and reports are rendered by
// the renderer and export packages. The `wfo` command line tool ties them
// together.
package watchfolio
