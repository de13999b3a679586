// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	courierResetSubject = "Redefinir Senha - SOS Motoboy"
	storeResetSubject   = "Redefinir Senha - Painel da Loja"
)

var (
	courierResetMail = template.Must(template.New("courier_reset").Parse(`<h3>Recuperação de Senha - SOS Motoboy</h3>
<p>Olá {{.Nome}},</p>
<p>Clique no link abaixo para criar uma nova senha:</p>
<a href="{{.Link}}">{{.Link}}</a>
<p>Se você não solicitou, ignore este e-mail.</p>
`))

	storeResetMail = template.Must(template.New("store_reset").Parse(`<h3>Recuperação de Senha - {{.Nome}}</h3>
<p>Recebemos um pedido para redefinir a senha do painel da sua loja.</p>
<p>Clique no link abaixo para criar uma nova senha:</p>
<a href="{{.Link}}">{{.Link}}</a>
<p>O link vale por uma única troca de senha. Se você não solicitou, ignore este e-mail.</p>
`))
)

type resetMailData struct {
	Nome string
	Link string
}

func renderMail(t *template.Template, data resetMailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s mail: %w", t.Name(), err)
	}
	return buf.String(), nil
}
