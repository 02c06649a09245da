// Package accounts provides the read-only balance store backed by a CSV file
// with the columns ID_Cedula, Nombre and Balance.
//
//	store, err := accounts.Load("data/saldos.csv", logger)
//	info, err := store.GetBalance(" v-12345678 ")
//	fmt.Println(accounts.FormatBalance(info))
package accounts
