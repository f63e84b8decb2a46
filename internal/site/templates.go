package site

const siteTitle = "Where in the world?"

// themeBootstrap applies the saved theme before first paint so pages do not
// flash light when dark was chosen.
const themeBootstrap = `<script>
(function() {
  var t = null;
  try { t = localStorage.getItem('theme'); } catch (e) {}
  if (t !== 'light' && t !== 'dark') {
    t = window.matchMedia && window.matchMedia('(prefers-color-scheme: dark)').matches ? 'dark' : 'light';
  }
  document.documentElement.setAttribute('data-theme', t);
  if (t === 'dark') document.documentElement.classList.add('dark');
})();
</script>`

const indexTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
  ` + themeBootstrap + `
</head>
<body>
  <header class="top-bar">
    <a class="brand" href="index.html">{{.Title}}</a>
    <button type="button" class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <span class="moon-icon">&#9790; Dark Mode</span>
      <span class="sun-icon">&#9788; Light Mode</span>
    </button>
  </header>
  <main class="content">
    <form class="controls" id="filter-form" onsubmit="return false">
      <input type="search" id="search-input" placeholder="Search for a country..." autocomplete="off">
      <select id="region-filter">
        <option value="">Filter by Region</option>
        {{- range .Regions}}
        <option value="{{.}}">{{.}}</option>
        {{- end}}
      </select>
    </form>
    <section class="grid" id="countries-grid">
      {{- range .Cards}}
      <a class="card" href="{{.DetailURL}}" data-name="{{.Name}}" data-region="{{.Region}}">
        <img src="{{.FlagURL}}" alt="{{.FlagAlt}}" loading="lazy">
        <div class="card-body">
          <h2>{{.Name}}</h2>
          <p><span class="label">Population:</span> {{.Population}}</p>
          <p><span class="label">Region:</span> {{.Region}}</p>
          <p><span class="label">Capital:</span> {{.Capital}}</p>
        </div>
      </a>
      {{- end}}
      <p class="message muted" id="no-results" hidden>No countries found</p>
    </section>
  </main>
  <script src="app.js"></script>
</body>
</html>
`

const countryTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="../style.css">
  ` + themeBootstrap + `
</head>
<body>
  <header class="top-bar">
    <a class="brand" href="../index.html">Where in the world?</a>
    <button type="button" class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <span class="moon-icon">&#9790; Dark Mode</span>
      <span class="sun-icon">&#9788; Light Mode</span>
    </button>
  </header>
  <main class="content">
    <button type="button" class="back-button" id="back-button" data-fallback="../index.html">&larr; Back</button>
    <article class="profile" id="detail-container" data-name="{{.Name}}">
{{.Content}}
    </article>
  </main>
  <script src="../app.js"></script>
</body>
</html>
`

// siteCSS is appended to the shared stylesheet for markup only the exported
// site uses.
const siteCSS = `
.profile img { max-width: 480px; width: 100%; border-radius: 8px; box-shadow: var(--shadow-lg); }
.profile h1 { margin-top: 2rem; }
.profile ul { display: flex; flex-wrap: wrap; gap: 0.5rem; padding: 0; list-style: none; }
.profile ul a {
  display: inline-block;
  padding: 0.5rem 1.5rem;
  border-radius: 4px;
  background: var(--surface);
  box-shadow: var(--shadow);
}
.card[hidden] { display: none; }
`

const jsContent = `(function() {
  'use strict';

  var html = document.documentElement;

  // Theme: persisted in localStorage, system preference until first toggle.
  var toggle = document.getElementById('theme-toggle');
  if (toggle) {
    toggle.addEventListener('click', function() {
      var next = html.classList.contains('dark') ? 'light' : 'dark';
      html.setAttribute('data-theme', next);
      html.classList.toggle('dark', next === 'dark');
      try { localStorage.setItem('theme', next); } catch (e) {}
    });
  }

  // Index: hide cards that fail the current search and region.
  var grid = document.getElementById('countries-grid');
  var search = document.getElementById('search-input');
  var region = document.getElementById('region-filter');
  var empty = document.getElementById('no-results');

  function apply() {
    if (!grid) return;
    var q = search ? search.value.trim().toLowerCase() : '';
    var r = region ? region.value : '';
    var shown = 0;
    var cards = grid.querySelectorAll('.card');
    for (var i = 0; i < cards.length; i++) {
      var card = cards[i];
      var okRegion = r === '' || r === 'all' || card.getAttribute('data-region') === r;
      var okName = q === '' || card.getAttribute('data-name').toLowerCase().indexOf(q) !== -1;
      card.hidden = !(okRegion && okName);
      if (!card.hidden) shown++;
    }
    if (empty) empty.hidden = shown !== 0;
  }

  if (search) search.addEventListener('input', apply);
  if (region) region.addEventListener('change', apply);

  // Country pages: go back, or to the index without history.
  var back = document.getElementById('back-button');
  if (back) {
    back.addEventListener('click', function() {
      if (history.length > 1) {
        history.back();
      } else {
        window.location.href = back.getAttribute('data-fallback') || 'index.html';
      }
    });
  }
})();
`
