// Copyright 2024 velours
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"fmt"
	"strings"

	"github.com/velours/boutique/internal/email"
	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

// statusMail 订单状态变更的法语通知邮件, 一组订单只渲染一封
func statusMail(sh shop.Shop, buyer user.User, orders []domain.Order, target domain.Status) (email.Mail, error) {
	if buyer.Email == "" {
		return email.Mail{}, fmt.Errorf("客户没有邮箱")
	}

	var total int64
	sns := make([]string, 0, len(orders))
	var rows strings.Builder
	for _, o := range orders {
		sns = append(sns, o.SN)
		total += o.TotalAmount
		for _, it := range o.Items {
			rows.WriteString(fmt.Sprintf(
				`<tr><td>%s</td><td>%d</td><td>%s €</td></tr>`,
				it.Name, it.Quantity, euros(it.Price*it.Quantity)))
		}
	}

	name := buyer.Nickname
	if name == "" {
		name = buyer.Email
	}

	body := fmt.Sprintf(`<html><body>
<p>Bonjour %s,</p>
<p>Votre commande <strong>%s</strong> est maintenant : <strong>%s</strong>.</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Produit</th><th>Quantité</th><th>Prix</th></tr>
%s
<tr><td colspan="2"><strong>Total</strong></td><td><strong>%s €</strong></td></tr>
</table>
<p>Merci de votre confiance,<br/>%s<br/>%s — %s</p>
</body></html>`,
		name,
		strings.Join(sns, ", "),
		target.Label(),
		rows.String(),
		euros(total),
		sh.Name, sh.Address, sh.Phone)

	return email.Mail{
		From:    sh.Email,
		To:      buyer.Email,
		Subject: fmt.Sprintf("%s — votre commande est %s", sh.Name, strings.ToLower(target.Label())),
		Body:    []byte(body),
	}, nil
}

// euros 分转欧元文案, 1234 -> 12,34
func euros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}
