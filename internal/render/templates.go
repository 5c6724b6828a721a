package render

const pageTemplate = `
{{- define "row" -}}
<tr>
  <td><small class="text-muted">#{{.ID}}</small></td>
  <td><strong>{{.Title}}</strong></td>
  <td><span class="category-badge">{{.Category}}</span></td>
  <td><span class="description-text">{{.Description}}</span></td>
  <td><span class="price-badge">{{.Price}}</span></td>
  <td><img src="{{.Image}}" alt="{{.Title}}" class="product-image" onerror="this.onerror=null;this.src='{{.Fallback}}'"></td>
</tr>
{{- end -}}

{{- define "rows" -}}
{{- range .Rows}}
{{template "row" .}}
{{- end}}
{{- end -}}

{{- define "error" -}}
<tr>
  <td colspan="{{.Columns}}">
    <div class="alert alert-danger mb-0" role="alert">{{.ErrorMessage}}</div>
  </td>
</tr>
{{- end -}}

{{- define "page" -}}
<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<title>Danh sách sản phẩm</title>
</head>
<body>
<form method="get" action="">
  <input type="search" id="searchInput" name="q" value="{{.Query}}" placeholder="Tìm kiếm theo tên sản phẩm..." autofocus>
</form>
<div class="btn-group">
{{- range .Controls}}
  <a id="{{.ElementID}}" class="btn{{if .Active}} active{{end}}" href="{{.Href}}">{{.Label}}</a>
{{- end}}
</div>
<p>Kết quả: <span id="resultCount">{{.Count}}</span></p>
<table class="table">
<thead>
<tr><th>ID</th><th>Tên sản phẩm</th><th>Danh mục</th><th>Mô tả</th><th>Giá</th><th>Hình ảnh</th></tr>
</thead>
<tbody id="productTableBody">
{{- if .LoadFailed}}
{{template "error" .}}
{{- else}}
{{template "rows" .}}
{{- end}}
</tbody>
</table>
<div id="noResults" style="display: {{if and .Empty (not .LoadFailed)}}block{{else}}none{{end}}">
  <p>{{.EmptyMessage}}</p>
{{- if .Suggestions}}
  <ul class="suggestions">
{{- range .Suggestions}}
    <li><a href="?q={{.}}">{{.}}</a></li>
{{- end}}
  </ul>
{{- end}}
</div>
</body>
</html>
{{- end -}}
`
