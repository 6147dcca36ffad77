package render

// Server-side templates for the public pages. Markup stays deliberately
// plain; the visual identity lives in the stylesheet the layout links.

const layoutTemplate = `
{{define "head"}}<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.}}</title>
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<header class="site-header">
  <a class="logo" href="/">NeuroScale</a>
  <nav>
    <a href="/#about">О нас</a>
    <a href="/#possibilities">Возможности</a>
    <a href="/#stages">Этапы</a>
    <a href="/#cases">Кейсы</a>
    <a href="/#faq">FAQ</a>
    <a href="/#contacts">Заявка</a>
  </nav>
</header>
{{end}}

{{define "foot"}}
<footer class="site-footer">
  <p>© NeuroScale</p>
  <p><a href="/privacy">Политика конфиденциальности</a> · <a href="/consent">Согласие на обработку данных</a></p>
</footer>
</body>
</html>
{{end}}
`

const homeTemplate = `
{{define "home"}}{{template "head" .Hero.Title}}
<main>
<section class="hero" id="hero">
  <h1>{{.Hero.Title}}</h1>
  {{if .Hero.Description}}<p>{{.Hero.Description}}</p>{{end}}
  <a class="cta" href="#contacts">{{if .Hero.Details}}{{.Hero.Details}}{{else}}Связаться с нами{{end}}</a>
</section>

<section class="about" id="about">
  <h2>{{.AboutTitle.Title}}</h2>
  {{if .AboutTitle.Description}}<p class="section-lead">{{.AboutTitle.Description}}</p>{{end}}
  <div class="cards">
  {{range .Abouts}}
    <article class="card">
      <h3>{{.Title}}</h3>
      <p>{{.Text}}</p>
    </article>
  {{end}}
  </div>
  <div class="stats">
  {{range .Statistics}}
    <div class="stat">
      <span class="stat-value">{{.Title}}</span>
      <span class="stat-text">{{.Text}}</span>
    </div>
  {{end}}
  </div>
</section>

<section class="possibilities" id="possibilities">
  <h2>{{.PossibilitieTitle.Title}}</h2>
  {{if .PossibilitieTitle.Description}}<p class="section-lead">{{.PossibilitieTitle.Description}}</p>{{end}}
  <div class="cards">
  {{range .Possibilities}}
    <article class="card">
      <h3>{{.Title}}</h3>
      <p>{{.Text}}</p>
      {{if .Points}}
      <ul>
      {{range .Points}}<li>{{.Name}}</li>{{end}}
      </ul>
      {{end}}
    </article>
  {{end}}
  </div>
</section>

<section class="stages" id="stages">
  <h2>{{.StageTitle.Title}}</h2>
  {{if .StageTitle.Description}}<p class="section-lead">{{.StageTitle.Description}}</p>{{end}}
  <ol class="timeline">
  {{range .Stages}}
    <li>
      <h3>{{.Title}}</h3>
      <p>{{.Text}}</p>
      {{if .Happening}}
      <ul>
      {{range .Happening}}<li>{{.Name}}</li>{{end}}
      </ul>
      {{end}}
    </li>
  {{end}}
  </ol>
</section>

<section class="cases" id="cases">
  <h2>{{.CaseTitle.Title}}</h2>
  {{if .CaseTitle.Description}}<p class="section-lead">{{.CaseTitle.Description}}</p>{{end}}
  <div class="cards">
  {{range .Cases}}
    <article class="card">
      <p class="direction">{{.Direction}}</p>
      <h3>{{.Title}}</h3>
      <p>{{.Text}}</p>
      {{if .Solution}}<p><strong>Решение:</strong> {{.Solution}}</p>{{end}}
      {{if .Effect}}<p><strong>Эффект:</strong> {{.Effect}}</p>{{end}}
    </article>
  {{end}}
  </div>
</section>

<section class="faq" id="faq">
  <h2>{{.FaqTitle.Title}}</h2>
  <dl>
  {{range .Faqs}}
    <dt>{{.Question}}</dt>
    <dd>{{.Answer}}</dd>
  {{end}}
  </dl>
</section>

<section class="contact-form" id="contacts">
  <h2>{{.Form.Title}}</h2>
  {{if .Form.Description}}<p class="section-lead">{{.Form.Description}}</p>{{end}}
  <form method="post" action="/api/client" data-lead-form>
    <input name="name" placeholder="Имя" required>
    <input name="phone" placeholder="Телефон" required>
    <textarea name="question" placeholder="Вопрос"></textarea>
    <button type="submit">Отправить</button>
    <p class="consent-note">Отправляя форму, вы соглашаетесь с <a href="/consent">обработкой персональных данных</a>.</p>
  </form>
  <ul class="contacts">
  {{range .Contacts}}
    <li><span>{{.Name}}</span> {{.Value}}</li>
  {{end}}
  </ul>
</section>
</main>
{{template "foot"}}{{end}}
`

const documentTemplate = `
{{define "document"}}{{template "head" .Title}}
<main class="document">
  <p class="eyebrow">Документы</p>
  <h1>{{.Title}}</h1>
  {{if .Description}}<p class="section-lead">{{.Description}}</p>{{end}}
  <article>{{.Content}}</article>
  {{if .UpdatedAt}}<p class="updated">Дата последнего обновления: {{.UpdatedAt}}</p>{{end}}
</main>
{{template "foot"}}{{end}}
`
