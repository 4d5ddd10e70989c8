package catalog

import (
	"net/http"
	"strconv"

	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

// GetProducts lists catalog products, optional ?category= and ?featured=true filters.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if r.URL.Query().Get("featured") == "true" {
		utils.RespondWithJSON(w, http.StatusOK, Featured())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ByCategory(r.URL.Query().Get("category")))
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("productid"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, ok := ByID(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}
